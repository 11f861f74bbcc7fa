/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestViewNoSelection(t *testing.T) {
	v := sampleCatalog(t).View("")

	if v.State() != StateNoSelection {
		t.Errorf("State() = %v; want %v", v.State(), StateNoSelection)
	}
	if v.Team != nil {
		t.Errorf("Team = %+v; want nil", v.Team)
	}
	if v.Fixtures == nil || len(v.Fixtures) != 0 {
		t.Errorf("Fixtures = %#v; want empty non-nil slice", v.Fixtures)
	}
}

func TestViewSelectedWithoutFixtures(t *testing.T) {
	v := sampleCatalog(t).View("ZZZ")

	if v.State() != StateNoFixtures {
		t.Errorf("State() = %v; want %v", v.State(), StateNoFixtures)
	}
	if v.Team == nil {
		t.Fatalf("Team = nil; want Unassigned")
	}
	if v.Team.Name != "Unassigned" {
		t.Errorf("Team.Name = %q; want Unassigned", v.Team.Name)
	}
	if len(v.Team.Opponents) != 0 || len(v.Fixtures) != 0 {
		t.Errorf("opponents %v fixtures %d; want none", v.Team.Opponents, len(v.Fixtures))
	}
}

func TestViewUnknownTeam(t *testing.T) {
	v := sampleCatalog(t).View("BRA")

	if v.State() != StateUnknownTeam {
		t.Errorf("State() = %v; want %v", v.State(), StateUnknownTeam)
	}
	if v.Team != nil || len(v.Fixtures) != 0 {
		t.Errorf("View(BRA) = %+v; want no team, no fixtures", v)
	}
}

func TestViewReady(t *testing.T) {
	v := sampleCatalog(t).View("FRA")
	if v.State() != StateReady {
		t.Fatalf("State() = %v; want %v", v.State(), StateReady)
	}

	team := v.Team
	if team.Name != "France" || team.Group != "B" || team.Ranking == nil || *team.Ranking != 2 {
		t.Errorf("Team = %+v; want France, group B, ranking 2", team)
	}
	wantOpp := []string{"Argentina", "Norway", "UEFA PO A"}
	if !slices.Equal(team.Opponents, wantOpp) {
		t.Errorf("Opponents = %v; want %v", team.Opponents, wantOpp)
	}

	if len(v.Fixtures) != 3 {
		t.Fatalf("len(Fixtures) = %d; want 3", len(v.Fixtures))
	}
	want := FixtureView{
		StageLabel:     "Group B",
		DateTime:       kickoff("2026-06-15T18:00:00Z"),
		Home:           Participant{Code: "FRA", Label: "France"},
		Away:           Participant{Code: "UEFA_PO_A", Label: "UEFA PO A"},
		City:           "Miami",
		Stadium:        "Hard Rock",
		IsHomeSelected: true,
	}
	if got := v.Fixtures[0]; !reflect.DeepEqual(got, want) {
		t.Errorf("Fixtures[0] = %+v; want %+v", got, want)
	}

	// ARG and NOR host FRA
	for i := 1; i < 3; i++ {
		if v.Fixtures[i].IsHomeSelected {
			t.Errorf("Fixtures[%d].IsHomeSelected = true; want false", i)
		}
	}
}

func TestViewIsIdempotent(t *testing.T) {
	c := sampleCatalog(t)
	for _, code := range []string{"", "FRA", "ARG", "MEX", "BRA"} {
		if a, b := c.View(code), c.View(code); !reflect.DeepEqual(a, b) {
			t.Errorf("View(%q) differs between calls: %+v vs %+v", code, a, b)
		}
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	ds := sampleDataset()
	ds.Teams = append(ds.Teams, Team{Code: "MEX", Name: "Mexico again"})
	if _, err := NewCatalog(ds); !errors.Is(err, ErrDuplicateTeam) {
		t.Errorf("NewCatalog err = %v; want ErrDuplicateTeam", err)
	}
}

func TestGroupTable(t *testing.T) {
	c := sampleCatalog(t)

	got, ok := c.GroupTable("A")
	if !ok {
		t.Fatalf("GroupTable(A) not found")
	}
	want := []Participant{
		{Code: "MEX", Label: "Mexico"},
		{Code: "RSA", Label: "South Africa"},
		{Code: "KOR", Label: "Korea Republic"},
		{Code: "UEFA_PO_D", Label: "UEFA PO D"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("GroupTable(A) = %v; want %v", got, want)
	}

	if _, ok := c.GroupTable("Z"); ok {
		t.Errorf("GroupTable(Z) found; want missing")
	}
}

func TestStateString(t *testing.T) {
	cases := []struct {
		s    State
		want string
	}{
		{s: StateNoSelection, want: "no-selection"},
		{s: StateUnknownTeam, want: "unknown-team"},
		{s: StateNoFixtures, want: "no-fixtures"},
		{s: StateReady, want: "ready"},
		{s: State(42), want: "?"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("State(%d).String() = %q; want %q", int(c.s), got, c.want)
		}
	}
}
