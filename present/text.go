/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package present

import (
	"fmt"
	"strings"
	"time"

	"github.com/mikeb26/worldcup-teamviewer/wcup"
)

const (
	NoSelectionText = "Pick a team to see its profile and schedule."
	NoFixturesText  = "No fixtures found for this team."
	missing         = "—"
)

// FormatDate renders t as e.g. "Mon, Jun 15" in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon, Jan 2")
}

// FormatTime renders t as e.g. "6:00 PM UTC" in loc.
func FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04 PM MST")
}

func optInt(p *int) string {
	if p == nil {
		return missing
	}
	return fmt.Sprintf("%d", *p)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// OptionLabel is how a team is listed in a picker.
func OptionLabel(t wcup.Team) string {
	if t.Host {
		return t.Name + " (host)"
	}
	return t.Name
}

// BuildTeamListOutput lists every team ordered by name.
func BuildTeamListOutput(idx *wcup.Index) string {
	teams := idx.SortedByName()
	maxCode := len("Code")
	for _, t := range teams {
		if l := len(t.Code); l > maxCode {
			maxCode = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-5s  %s\n", maxCode, "Code", "Group", "Team"))
	for _, t := range teams {
		sb.WriteString(fmt.Sprintf("%-*s  %-5s  %s\n", maxCode, t.Code, t.Group,
			OptionLabel(t)))
	}
	return sb.String()
}

// BuildTeamOutput renders the team card for v.
func BuildTeamOutput(v wcup.View) string {
	switch v.State() {
	case wcup.StateNoSelection:
		return NoSelectionText + "\n"
	case wcup.StateUnknownTeam:
		return fmt.Sprintf("Unknown team %q.\n", v.Selection)
	}

	t := v.Team
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s (Group %s)\n", t.Code, t.Name, t.Group))
	sb.WriteString(fmt.Sprintf("FIFA Ranking: %s\n", optInt(t.Ranking)))
	sb.WriteString(fmt.Sprintf("Appearances: %s\n", optInt(t.Appearances)))
	sb.WriteString(fmt.Sprintf("Host Nation: %s\n", yesNo(t.Host)))
	if len(t.Opponents) > 0 {
		sb.WriteString(fmt.Sprintf("Group opponents: %s\n",
			strings.Join(t.Opponents, ", ")))
	}
	return sb.String()
}

// BuildFixturesOutput renders v's schedule as an aligned table. The selected
// side is marked with '*'.
func BuildFixturesOutput(v wcup.View, loc *time.Location) string {
	if v.State() == wcup.StateNoSelection {
		return NoSelectionText + "\n"
	}
	// an unknown code may still appear in fixtures
	if len(v.Fixtures) == 0 {
		return NoFixturesText + "\n"
	}

	return buildFixtureTable(v.Fixtures, loc)
}

func buildFixtureTable(fixtures []wcup.FixtureView, loc *time.Location) string {
	type row struct{ stage, when, home, away, venue string }
	rows := make([]row, 0, len(fixtures))
	for _, fv := range fixtures {
		home := fmt.Sprintf("%s %s", fv.Home.Code, fv.Home.Label)
		away := fmt.Sprintf("%s %s", fv.Away.Code, fv.Away.Label)
		if fv.IsHomeSelected {
			home = "*" + home
		} else {
			away = "*" + away
		}
		rows = append(rows, row{
			stage: fv.StageLabel,
			when: fmt.Sprintf("%s · %s", FormatDate(fv.DateTime, loc),
				FormatTime(fv.DateTime, loc)),
			home:  home,
			away:  away,
			venue: fmt.Sprintf("%s · %s", fv.City, fv.Stadium),
		})
	}

	maxS, maxW, maxH, maxA := len("Stage"), len("When"), len("Home"), len("Away")
	for _, r := range rows {
		if l := len([]rune(r.stage)); l > maxS {
			maxS = l
		}
		if l := len([]rune(r.when)); l > maxW {
			maxW = l
		}
		if l := len([]rune(r.home)); l > maxH {
			maxH = l
		}
		if l := len([]rune(r.away)); l > maxA {
			maxA = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s\n", pad("Stage", maxS),
		pad("When", maxW), pad("Home", maxH), pad("Away", maxA), "Venue"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s\n", pad(r.stage, maxS),
			pad(r.when, maxW), pad(r.home, maxH), pad(r.away, maxA), r.venue))
	}
	return sb.String()
}

// pad left-justifies s to width runes; %-*s counts bytes, which misaligns
// names such as "Curaçao".
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// BuildCompareOutput renders the head to head of two teams.
func BuildCompareOutput(cmp wcup.Comparison, loc *time.Location) string {
	var sb strings.Builder
	if cmp.A == nil || cmp.B == nil {
		sb.WriteString("Both teams must be known to compare them.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%s (Group %s) vs %s (Group %s)\n", cmp.A.Name,
		cmp.A.Group, cmp.B.Name, cmp.B.Group))
	if cmp.SameGroup {
		sb.WriteString("Same group\n")
	}
	if len(cmp.Fixtures) == 0 {
		sb.WriteString("No scheduled meeting.\n")
		return sb.String()
	}
	sb.WriteString("\n")
	sb.WriteString(buildFixtureTable(cmp.Fixtures, loc))
	return sb.String()
}

// BuildGroupOutput lists the members of a group.
func BuildGroupOutput(id string, members []wcup.Participant) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Group %s\n", id))
	for i, m := range members {
		sb.WriteString(fmt.Sprintf("  %d. %s (%s)\n", i+1, m.Label, m.Code))
	}
	return sb.String()
}
