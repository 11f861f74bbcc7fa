/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mikeb26/worldcup-teamviewer/dataset"
	"github.com/mikeb26/worldcup-teamviewer/internal"
	"github.com/mikeb26/worldcup-teamviewer/present"
	"github.com/mikeb26/worldcup-teamviewer/wcup"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"teams":    handleTeams,
	"team":     handleTeam,
	"fixtures": handleFixtures,
	"group":    handleGroup,
	"compare":  handleCompare,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// commonFlags are accepted by every data command.
type commonFlags struct {
	tz       *string
	teams    *string
	fixtures *string
	groups   *string
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		tz:       fs.String("tz", "UTC", "Time zone for kickoff times"),
		teams:    fs.String("teams", "", "Teams dataset location"),
		fixtures: fs.String("fixtures", "", "Fixtures dataset location"),
		groups:   fs.String("groups", "", "Groups dataset location"),
	}
}

func (cf *commonFlags) location() *time.Location {
	loc, err := time.LoadLocation(*cf.tz)
	if err != nil {
		log.Fatalf("Invalid --tz %q: %v", *cf.tz, err)
	}
	return loc
}

func (cf *commonFlags) loadCatalog(ctx context.Context) *wcup.Catalog {
	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if *cf.teams != "" || *cf.fixtures != "" || *cf.groups != "" {
		cfg.TeamsURL, cfg.FixturesURL, cfg.GroupsURL = *cf.teams, *cf.fixtures, *cf.groups
		if cfg.TeamsURL == "" || cfg.FixturesURL == "" || cfg.GroupsURL == "" {
			log.Fatalf("--teams, --fixtures and --groups must be given together")
		}
	}

	catalog, err := dataset.CatalogFromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("Error loading datasets: %v", err)
	}
	return catalog
}

func mustFindTeam(catalog *wcup.Catalog, query string) wcup.Team {
	team, err := catalog.Index().FindTeam(query)
	if err != nil {
		log.Fatalf("Error finding team: %v", err)
	}
	return team
}

func handleTeams(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("teams", flag.ExitOnError)
	cf := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	catalog := cf.loadCatalog(ctx)

	fmt.Print(present.BuildTeamListOutput(catalog.Index()))
	fmt.Printf("\nRun '%s team --team <Code>' to get details on a specific team\n",
		os.Args[0])
}

func handleTeam(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("team", flag.ExitOnError)
	query := fs.String("team", "", "Team code or name")
	cf := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *query == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --team code or name.")
		fs.Usage()
		os.Exit(1)
	}
	catalog := cf.loadCatalog(ctx)
	team := mustFindTeam(catalog, *query)

	fmt.Print(present.BuildTeamOutput(catalog.View(team.Code)))
}

func handleFixtures(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("fixtures", flag.ExitOnError)
	query := fs.String("team", "", "Team code or name")
	cf := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *query == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --team code or name.")
		fs.Usage()
		os.Exit(1)
	}
	loc := cf.location()
	catalog := cf.loadCatalog(ctx)
	team := mustFindTeam(catalog, *query)

	v := catalog.View(team.Code)
	fmt.Printf("%s fixtures\n\n", team.Name)
	fmt.Print(present.BuildFixturesOutput(v, loc))
}

func handleGroup(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("group", flag.ExitOnError)
	id := fs.String("id", "", "Group id, e.g. A")
	cf := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *id == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --id group.")
		fs.Usage()
		os.Exit(1)
	}
	catalog := cf.loadCatalog(ctx)

	gid := strings.ToUpper(*id)
	members, ok := catalog.GroupTable(gid)
	if !ok {
		log.Fatalf("No group %v", gid)
	}
	fmt.Print(present.BuildGroupOutput(gid, members))
}

func handleCompare(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cf := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Please provide exactly two teams.")
		fs.Usage()
		os.Exit(1)
	}
	loc := cf.location()
	catalog := cf.loadCatalog(ctx)
	a := mustFindTeam(catalog, fs.Arg(0))
	b := mustFindTeam(catalog, fs.Arg(1))

	fmt.Print(present.BuildCompareOutput(catalog.Compare(a.Code, b.Code), loc))
}
