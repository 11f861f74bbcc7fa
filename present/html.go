/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package present

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/mikeb26/worldcup-teamviewer/wcup"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

type Option struct {
	Code     string
	Label    string
	Selected bool
}

type TeamCard struct {
	Code        string
	Name        string
	Group       string
	Flag        string
	Ranking     string
	Appearances string
	Host        string
	Opponents   string
}

type Side struct {
	Code  string
	Label string
	Flag  string
}

type FixtureRow struct {
	Stage        string
	ISO          string
	Date         string
	Time         string
	Home         Side
	Away         Side
	HomeSelected bool
	City         string
	Stadium      string
	CalendarURL  string
	MapURL       string
}

// Page is the template model for one rendering of the viewer.
type Page struct {
	Options             []Option
	Team                *TeamCard
	TeamPlaceholder     string
	Fixtures            []FixtureRow
	FixturesPlaceholder string
}

// NewPage builds the page model for v; times are shown in loc.
func NewPage(idx *wcup.Index, v wcup.View, loc *time.Location) Page {
	p := Page{
		TeamPlaceholder:     NoSelectionText,
		FixturesPlaceholder: NoSelectionText,
	}
	for _, t := range idx.SortedByName() {
		p.Options = append(p.Options, Option{
			Code:     t.Code,
			Label:    OptionLabel(t),
			Selected: t.Code == v.Selection,
		})
	}

	switch v.State() {
	case wcup.StateUnknownTeam:
		p.TeamPlaceholder = fmt.Sprintf("Unknown team %q.", v.Selection)
		p.FixturesPlaceholder = NoFixturesText
	case wcup.StateNoFixtures, wcup.StateReady:
		p.FixturesPlaceholder = NoFixturesText
	}

	if t := v.Team; t != nil {
		p.Team = &TeamCard{
			Code:        t.Code,
			Name:        t.Name,
			Group:       t.Group,
			Flag:        FlagURL(t.Code),
			Ranking:     optInt(t.Ranking),
			Appearances: optInt(t.Appearances),
			Host:        yesNo(t.Host),
			Opponents:   strings.Join(t.Opponents, ", "),
		}
	}

	for _, fv := range v.Fixtures {
		p.Fixtures = append(p.Fixtures, FixtureRow{
			Stage:        fv.StageLabel,
			ISO:          fv.DateTime.UTC().Format(time.RFC3339),
			Date:         FormatDate(fv.DateTime, loc),
			Time:         FormatTime(fv.DateTime, loc),
			Home:         Side{Code: fv.Home.Code, Label: fv.Home.Label, Flag: FlagURL(fv.Home.Code)},
			Away:         Side{Code: fv.Away.Code, Label: fv.Away.Label, Flag: FlagURL(fv.Away.Code)},
			HomeSelected: fv.IsHomeSelected,
			City:         fv.City,
			Stadium:      fv.Stadium,
			CalendarURL:  CalendarLink(fv),
			MapURL:       MapLink(fv),
		})
	}

	return p
}

// RenderPage writes the HTML viewer for p.
func RenderPage(w io.Writer, p Page) error {
	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("unable to render page: %w", err)
	}
	return nil
}
