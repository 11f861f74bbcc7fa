/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mikeb26/worldcup-teamviewer/internal"
)

const (
	TBD        = "TBD"
	GroupStage = "group"
)

var ErrBadDate = errors.New("invalid fixture date")

// vended by teams.json
type Team struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Ranking     *int   `json:"ranking,omitempty"`
	Appearances *int   `json:"appearances,omitempty"`
	Host        bool   `json:"host,omitempty"`
}

// Side is one participant slot of a fixture. Code is the confirmed team code;
// Pool names the qualification path the team will come from when it is not
// yet known. Both may be empty.
type Side struct {
	Code string
	Pool string
}

// IsTBD reports whether neither a team nor a pool is known for the side.
func (s Side) IsTBD() bool {
	return s.Code == "" && s.Pool == ""
}

// vended by fixtures.json
type Fixture struct {
	Date    time.Time
	Home    Side
	Away    Side
	Stage   string
	Group   string
	City    string
	Stadium string
}

type fixtureJSON struct {
	Date     string `json:"date"`
	Home     string `json:"home,omitempty"`
	HomePool string `json:"home_pool,omitempty"`
	Away     string `json:"away,omitempty"`
	AwayPool string `json:"away_pool,omitempty"`
	Stage    string `json:"stage,omitempty"`
	Group    string `json:"group,omitempty"`
	City     string `json:"city"`
	Stadium  string `json:"stadium"`
}

// UnmarshalJSON flattens the home/home_pool and away/away_pool keys into
// Sides and rejects fixtures whose date does not parse.
func (f *Fixture) UnmarshalJSON(data []byte) error {
	var aux fixtureJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Fixture unmarshal: %w", err)
	}
	date, err := internal.ParseDate(aux.Date)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrBadDate, aux.Date, err)
	}

	*f = Fixture{
		Date:    date,
		Home:    Side{Code: aux.Home, Pool: aux.HomePool},
		Away:    Side{Code: aux.Away, Pool: aux.AwayPool},
		Stage:   aux.Stage,
		Group:   aux.Group,
		City:    aux.City,
		Stadium: aux.Stadium,
	}
	return nil
}

// MarshalJSON writes the same flat shape UnmarshalJSON reads.
func (f Fixture) MarshalJSON() ([]byte, error) {
	return json.Marshal(fixtureJSON{
		Date:     f.Date.UTC().Format(time.RFC3339),
		Home:     f.Home.Code,
		HomePool: f.Home.Pool,
		Away:     f.Away.Code,
		AwayPool: f.Away.Pool,
		Stage:    f.Stage,
		Group:    f.Group,
		City:     f.City,
		Stadium:  f.Stadium,
	})
}

// Groups maps a group id to the ordered codes of its members. vended by
// groups.json
type Groups map[string][]string

// Dataset is the full set of documents the viewer is built from.
type Dataset struct {
	Teams    []Team
	Fixtures []Fixture
	Groups   Groups
}
