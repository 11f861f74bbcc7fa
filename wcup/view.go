/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

import (
	"fmt"
	"time"
)

// Catalog is the loaded, immutable dataset plus its team index. It is safe
// for concurrent use since nothing mutates it after NewCatalog returns.
type Catalog struct {
	index    *Index
	fixtures []Fixture
	groups   Groups
}

func NewCatalog(ds Dataset) (*Catalog, error) {
	idx, err := Build(ds.Teams)
	if err != nil {
		return nil, fmt.Errorf("unable to index teams: %w", err)
	}
	groups := ds.Groups
	if groups == nil {
		groups = Groups{}
	}

	return &Catalog{
		index:    idx,
		fixtures: ds.Fixtures,
		groups:   groups,
	}, nil
}

func (c *Catalog) Index() *Index {
	return c.index
}

func (c *Catalog) Groups() Groups {
	return c.groups
}

func (c *Catalog) Fixtures() []Fixture {
	return c.fixtures
}

type State int

const (
	StateNoSelection State = iota
	StateUnknownTeam
	StateNoFixtures
	StateReady
)

func (s State) String() string {
	switch s {
	case StateNoSelection:
		return "no-selection"
	case StateUnknownTeam:
		return "unknown-team"
	case StateNoFixtures:
		return "no-fixtures"
	case StateReady:
		return "ready"
	default:
		return "?"
	}
}

// TeamSnapshot is a team's profile as shown on its card.
type TeamSnapshot struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Ranking     *int     `json:"ranking,omitempty"`
	Appearances *int     `json:"appearances,omitempty"`
	Host        bool     `json:"host"`
	Opponents   []string `json:"opponents"`
}

// FixtureView is one row of a team's schedule.
type FixtureView struct {
	StageLabel     string      `json:"stageLabel"`
	DateTime       time.Time   `json:"dateTime"`
	Home           Participant `json:"home"`
	Away           Participant `json:"away"`
	City           string      `json:"city"`
	Stadium        string      `json:"stadium"`
	IsHomeSelected bool        `json:"isHomeSelected"`
}

// View is everything needed to render one selection. Team is nil when
// nothing is selected or the selected code is not a known team.
type View struct {
	Selection string        `json:"selection"`
	Team      *TeamSnapshot `json:"team"`
	Fixtures  []FixtureView `json:"fixtures"`
}

func (v View) State() State {
	if v.Selection == "" {
		return StateNoSelection
	}
	if v.Team == nil {
		return StateUnknownTeam
	}
	if len(v.Fixtures) == 0 {
		return StateNoFixtures
	}
	return StateReady
}

// View computes the team card and schedule for the selected code. An empty
// selection yields the no-selection view.
func (c *Catalog) View(selection string) View {
	v := View{
		Selection: selection,
		Fixtures:  []FixtureView{},
	}
	if selection == "" {
		return v
	}

	v.Team = c.Snapshot(selection)
	for _, f := range SelectFixtures(c.fixtures, selection) {
		v.Fixtures = append(v.Fixtures, c.fixtureView(f, selection))
	}

	return v
}

// Snapshot returns the team card for code or nil when code is unknown.
func (c *Catalog) Snapshot(code string) *TeamSnapshot {
	team, ok := c.index.Lookup(code)
	if !ok {
		return nil
	}

	return &TeamSnapshot{
		Code:        team.Code,
		Name:        team.Name,
		Group:       team.Group,
		Ranking:     team.Ranking,
		Appearances: team.Appearances,
		Host:        team.Host,
		Opponents:   GroupOpponents(c.index, team, c.groups),
	}
}

func (c *Catalog) fixtureView(f Fixture, selection string) FixtureView {
	return FixtureView{
		StageLabel:     StageLabel(f),
		DateTime:       f.Date,
		Home:           LabelSide(c.index, f, Home),
		Away:           LabelSide(c.index, f, Away),
		City:           f.City,
		Stadium:        f.Stadium,
		IsHomeSelected: selection != "" && f.Home.Code == selection,
	}
}

// GroupTable returns the members of group id as participants in assignment
// order, or false if the group is not assigned.
func (c *Catalog) GroupTable(id string) ([]Participant, bool) {
	members, ok := c.groups[id]
	if !ok {
		return nil, false
	}
	out := make([]Participant, 0, len(members))
	for _, code := range members {
		out = append(out, Participant{Code: code, Label: c.index.ResolveName(code)})
	}
	return out, true
}
