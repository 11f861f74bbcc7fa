/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package present

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDateTime(t *testing.T) {
	ts := at("2026-06-15T18:00:00Z")
	if got := FormatDate(ts, time.UTC); got != "Mon, Jun 15" {
		t.Errorf("FormatDate = %q; want %q", got, "Mon, Jun 15")
	}
	if got := FormatTime(ts, time.UTC); got != "6:00 PM UTC" {
		t.Errorf("FormatTime = %q; want %q", got, "6:00 PM UTC")
	}

	est := time.FixedZone("EDT", -4*60*60)
	if got := FormatTime(ts, est); got != "2:00 PM EDT" {
		t.Errorf("FormatTime(EDT) = %q; want %q", got, "2:00 PM EDT")
	}
}

func TestBuildTeamOutput(t *testing.T) {
	c := testCatalog(t)

	cases := []struct {
		name string
		sel  string
		want []string
		not  []string
	}{
		{
			name: "ready",
			sel:  "FRA",
			want: []string{"FRA France (Group I)", "FIFA Ranking: 3", "Appearances: —",
				"Host Nation: No", "Group opponents: Senegal, IC PO 2"},
		},
		{
			name: "no opponents line",
			sel:  "USA",
			want: []string{"Host Nation: Yes"},
			not:  []string{"Group opponents"},
		},
		{name: "nothing selected", sel: "", want: []string{NoSelectionText}},
		{name: "unknown", sel: "BRA", want: []string{`Unknown team "BRA"`}},
	}
	for _, c2 := range cases {
		t.Run(c2.name, func(t *testing.T) {
			out := BuildTeamOutput(c.View(c2.sel))
			for _, w := range c2.want {
				if !strings.Contains(out, w) {
					t.Errorf("%s: output missing %q:\n%s", c2.name, w, out)
				}
			}
			for _, n := range c2.not {
				if strings.Contains(out, n) {
					t.Errorf("%s: output unexpectedly contains %q:\n%s", c2.name, n, out)
				}
			}
		})
	}
}

func TestBuildFixturesOutput(t *testing.T) {
	c := testCatalog(t)

	out := BuildFixturesOutput(c.View("FRA"), time.UTC)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines; want header + 2 rows:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Stage") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "SEN Senegal") || !strings.Contains(lines[1], "*FRA France") {
		t.Errorf("first row should be SEN vs *FRA: %q", lines[1])
	}
	if !strings.Contains(lines[2], "*FRA France") || !strings.Contains(lines[2], "IC_PO_2 IC PO 2") {
		t.Errorf("second row should be *FRA vs IC_PO_2: %q", lines[2])
	}
	if !strings.Contains(lines[1], "Tue, Jun 16 · 7:00 PM UTC") {
		t.Errorf("first row missing kickoff: %q", lines[1])
	}

	if got := BuildFixturesOutput(c.View(""), time.UTC); !strings.Contains(got, NoSelectionText) {
		t.Errorf("no selection output = %q", got)
	}
	if got := BuildFixturesOutput(c.View("USA"), time.UTC); !strings.Contains(got, NoFixturesText) {
		t.Errorf("no fixtures output = %q", got)
	}
}

func TestBuildTeamListOutput(t *testing.T) {
	out := BuildTeamListOutput(testCatalog(t).Index())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines; want 5:\n%s", len(lines), out)
	}
	// ordered by name
	for i, code := range []string{"CUW", "FRA", "SEN", "USA"} {
		if !strings.HasPrefix(lines[i+1], code) {
			t.Errorf("line %d = %q; want %v first", i+1, lines[i+1], code)
		}
	}
	if !strings.HasSuffix(lines[4], "United States (host)") {
		t.Errorf("host not marked: %q", lines[4])
	}
}

func TestBuildCompareOutput(t *testing.T) {
	c := testCatalog(t)

	out := BuildCompareOutput(c.Compare("FRA", "SEN"), time.UTC)
	if !strings.Contains(out, "Same group") || !strings.Contains(out, "MetLife Stadium") {
		t.Errorf("unexpected compare output:\n%s", out)
	}

	out = BuildCompareOutput(c.Compare("FRA", "USA"), time.UTC)
	if !strings.Contains(out, "No scheduled meeting.") {
		t.Errorf("unexpected compare output:\n%s", out)
	}

	out = BuildCompareOutput(c.Compare("FRA", "XXX"), time.UTC)
	if !strings.Contains(out, "Both teams must be known") {
		t.Errorf("unexpected compare output:\n%s", out)
	}
}

func TestPad(t *testing.T) {
	if got := pad("Curaçao", 9); got != "Curaçao  " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("toolong", 3); got != "toolong" {
		t.Errorf("pad = %q", got)
	}
}
