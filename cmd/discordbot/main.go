/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/worldcup-teamviewer/dataset"
	"github.com/mikeb26/worldcup-teamviewer/internal"
)

type TopLevelCommand string

const (
	WcCmd TopLevelCommand = "wc"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

type server struct {
	bot      *bot
	pubKey   ed25519.PublicKey
	cmdHdlrs map[TopLevelCommand]CmdHandler
}

func (s *server) interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, s.pubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, string(body))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok := s.cmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(r.Context(), &inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interation type %v", inter.Type)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(rawResp); err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
	}
}

func teamOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "team",
		Description: "Team code or name, e.g. FRA or France",
		Required:    required,
	}
}

func broadcastOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}
}

func wcCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        string(WcCmd),
		Description: "World Cup team profiles and schedules; try /wc help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(WcHelpCmd),
				Description: "Show usage for wc",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(WcAboutCmd),
				Description: "Show information about worldcup-teamviewer",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(WcTeamCmd),
				Description: "Show a team's profile and group opponents",
				Options:     []*discordgo.ApplicationCommandOption{teamOption(true), broadcastOption()},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(WcFixturesCmd),
				Description: "Show a team's fixtures",
				Options: []*discordgo.ApplicationCommandOption{
					teamOption(true),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "tz",
						Description: "Time zone for kickoff times, e.g. America/New_York (default is UTC)",
						Required:    false,
					},
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(WcGroupCmd),
				Description: "List the members of a group",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "id",
						Description: "Group id, e.g. A",
						Required:    true,
					},
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(WcCompareCmd),
				Description: "Compare two teams",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "teams",
						Description: `Two teams, e.g. FRA NOR or "Korea Republic" Mexico`,
						Required:    true,
					},
					broadcastOption(),
				},
			},
		},
	}
}

func registerSlashCommands(cfg *internal.Config) {
	if cfg.DiscordBotToken == "" || cfg.DiscordAppID == "" {
		log.Printf("discordbot.reg: no bot token or app id; skipping registration")
		return
	}
	client, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Printf("discordbot.reg: failed to initialize discord client: %v", err)
		return
	}

	cmd := wcCommand()
	if cfg.DiscordCmdID == "" {
		created, err := client.ApplicationCommandCreate(cfg.DiscordAppID, "", cmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v", cmd.Name, err)
			return
		}
		log.Printf("discordbot.reg: registered %v(cmdID:%v); set DISCORD_CMD_ID to it",
			created.Name, created.ID)
		return
	}

	updated, err := client.ApplicationCommandEdit(cfg.DiscordAppID, "", cfg.DiscordCmdID, cmd)
	if err != nil {
		log.Printf("discordbot.reg: failed to update %v: %v", cmd.Name, err)
		return
	}
	log.Printf("discordbot.reg: updated %v(cmdID:%v)", updated.Name, updated.ID)
}

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))

	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("discordbot.main: failed to load configuration: %v", err)
	}
	pubKeyBytes, err := hex.DecodeString(cfg.DiscordPublicKey)
	if err != nil || len(pubKeyBytes) != ed25519.PublicKeySize {
		log.Fatalf("discordbot.main: invalid DISCORD_PUBLIC_KEY: %v", err)
	}

	catalog, err := dataset.CatalogFromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("discordbot.main: failed to load datasets: %v", err)
	}

	s := &server{
		bot:    newBot(catalog),
		pubKey: ed25519.PublicKey(pubKeyBytes),
	}
	s.cmdHdlrs = map[TopLevelCommand]CmdHandler{
		WcCmd: s.bot.wcCmdHandler,
	}

	go registerSlashCommands(cfg)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v%v", hostname, cfg.ListenAddr)

	http.HandleFunc("/DiscordBot/Interaction", s.interactionHandler)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
