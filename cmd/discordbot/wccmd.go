/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"

	"github.com/mikeb26/worldcup-teamviewer/present"
	"github.com/mikeb26/worldcup-teamviewer/wcup"
)

//go:embed help.md
var helpText string

//go:embed about.txt
var aboutText string

type WcSubCommand string

const (
	WcHelpCmd     WcSubCommand = "help"
	WcAboutCmd    WcSubCommand = "about"
	WcTeamCmd     WcSubCommand = "team"
	WcFixturesCmd WcSubCommand = "fixtures"
	WcGroupCmd    WcSubCommand = "group"
	WcCompareCmd  WcSubCommand = "compare"
)

type bot struct {
	catalog *wcup.Catalog
	subCmds map[WcSubCommand]CmdHandler
}

func newBot(catalog *wcup.Catalog) *bot {
	b := &bot{catalog: catalog}
	b.subCmds = map[WcSubCommand]CmdHandler{
		WcHelpCmd:     b.wcHelpCmdHandler,
		WcAboutCmd:    b.wcAboutCmdHandler,
		WcTeamCmd:     b.wcTeamCmdHandler,
		WcFixturesCmd: b.wcFixturesCmdHandler,
		WcGroupCmd:    b.wcGroupCmdHandler,
		WcCompareCmd:  b.wcCompareCmdHandler,
	}
	return b
}

func (b *bot) wcCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	if len(data.Options) > 0 {
		if hdlr, ok := b.subCmds[WcSubCommand(data.Options[0].Name)]; ok {
			return hdlr(ctx, inter)
		}
	}

	return b.wcHelpCmdHandler(ctx, inter)
}

func newResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// subOptions flattens the options of the invoked subcommand into name ->
// option.
func subOptions(inter *discordgo.Interaction) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return opts
	}
	for _, opt := range data.Options[0].Options {
		opts[opt.Name] = opt
	}
	return opts
}

func applyBroadcast(resp *discordgo.InteractionResponse,
	opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {

	if opt, ok := opts["broadcast"]; ok && opt.BoolValue() {
		resp.Data.Flags &^= discordgo.MessageFlagsEphemeral
	}
}

func (b *bot) wcHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	resp.Data.Content = truncateContent(helpText)
	return resp
}

func (b *bot) wcAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	resp.Data.Content = truncateContent(aboutText)
	return resp
}

// findTeam resolves free text to a team and turns lookup failures into a
// message suitable for the user.
func (b *bot) findTeam(query string) (wcup.Team, string) {
	team, err := b.catalog.Index().FindTeam(query)
	switch {
	case err == nil:
		return team, ""
	case errors.Is(err, wcup.ErrAmbiguousTeam):
		return team, fmt.Sprintf("More than one team matches %q; try the 3 letter code.", query)
	case errors.Is(err, wcup.ErrTeamNotFound):
		return team, fmt.Sprintf("No team matches %q.", query)
	}
	log.Printf("discordbot.findTeam: unexpected error for %q: %v", query, err)
	return team, fmt.Sprintf("Unable to look up %q.", query)
}

func (b *bot) wcTeamCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	applyBroadcast(resp, opts)

	query := ""
	if opt, ok := opts["team"]; ok {
		query = opt.StringValue()
	}
	if strings.TrimSpace(query) == "" {
		resp.Data.Content = present.NoSelectionText
		return resp
	}
	team, errMsg := b.findTeam(query)
	if errMsg != "" {
		resp.Data.Content = errMsg
		return resp
	}

	v := b.catalog.View(team.Code)
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(present.BuildTeamOutput(v)))
	if url := present.FlagURL(team.Code); url != "" {
		resp.Data.Embeds = []*discordgo.MessageEmbed{
			{
				Title:     present.OptionLabel(team),
				Thumbnail: &discordgo.MessageEmbedThumbnail{URL: url},
			},
		}
	}
	return resp
}

func (b *bot) wcFixturesCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	applyBroadcast(resp, opts)

	query := ""
	if opt, ok := opts["team"]; ok {
		query = opt.StringValue()
	}
	loc := time.UTC
	if opt, ok := opts["tz"]; ok && opt.StringValue() != "" {
		var err error
		loc, err = time.LoadLocation(opt.StringValue())
		if err != nil {
			resp.Data.Content = fmt.Sprintf("Unknown time zone %q.", opt.StringValue())
			return resp
		}
	}
	if strings.TrimSpace(query) == "" {
		resp.Data.Content = present.NoSelectionText
		return resp
	}
	team, errMsg := b.findTeam(query)
	if errMsg != "" {
		resp.Data.Content = errMsg
		return resp
	}

	v := b.catalog.View(team.Code)
	resp.Data.Content = fmt.Sprintf("**%v**\n```\n%s```", team.Name,
		truncateContent(present.BuildFixturesOutput(v, loc)))
	return resp
}

func (b *bot) wcGroupCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	applyBroadcast(resp, opts)

	id := ""
	if opt, ok := opts["id"]; ok {
		id = strings.ToUpper(strings.TrimSpace(opt.StringValue()))
	}
	members, ok := b.catalog.GroupTable(id)
	if !ok {
		resp.Data.Content = fmt.Sprintf("No group %q.", id)
		return resp
	}
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(present.BuildGroupOutput(id, members)))
	return resp
}

func (b *bot) wcCompareCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	applyBroadcast(resp, opts)

	raw := ""
	if opt, ok := opts["teams"]; ok {
		raw = opt.StringValue()
	}
	queries, err := splitTeams(raw)
	if err != nil || len(queries) != 2 {
		resp.Data.Content = `Give exactly two teams, e.g. FRA NOR or "Korea Republic" Mexico.`
		return resp
	}

	codes := make([]string, 0, len(queries))
	for _, q := range queries {
		team, errMsg := b.findTeam(q)
		if errMsg != "" {
			resp.Data.Content = errMsg
			return resp
		}
		codes = append(codes, team.Code)
	}

	cmp := b.catalog.Compare(codes[0], codes[1])
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(present.BuildCompareOutput(cmp, time.UTC)))
	return resp
}

// splitTeams splits a space separated list of team queries, keeping quoted
// names such as "Korea Republic" together.
func splitTeams(s string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes,
		splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}

	ret := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.Trim(p, "\"“”"))
		if p != "" {
			ret = append(ret, p)
		}
	}
	return ret, nil
}

func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
