/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFixtureUnmarshal(t *testing.T) {
	raw := `[
	  {"date":"2026-06-15T18:00:00Z","home":"FRA","away_pool":"UEFA_PO_A","stage":"group","group":"A","city":"Miami","stadium":"Hard Rock"},
	  {"date":"2026-07-19T15:00:00-04:00","stage":"final","city":"New York","stadium":"MetLife"}
	]`
	var fixtures []Fixture
	if err := json.Unmarshal([]byte(raw), &fixtures); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("got %d fixtures; want 2", len(fixtures))
	}

	f := fixtures[0]
	if f.Home != (Side{Code: "FRA"}) {
		t.Errorf("Home = %+v; want FRA", f.Home)
	}
	if f.Away != (Side{Pool: "UEFA_PO_A"}) {
		t.Errorf("Away = %+v; want pool UEFA_PO_A", f.Away)
	}
	if !f.Date.Equal(kickoff("2026-06-15T18:00:00Z")) {
		t.Errorf("Date = %v", f.Date)
	}
	if f.Stage != "group" || f.Group != "A" || f.City != "Miami" || f.Stadium != "Hard Rock" {
		t.Errorf("unexpected fixture %+v", f)
	}

	final := fixtures[1]
	if !final.Home.IsTBD() || !final.Away.IsTBD() {
		t.Errorf("final sides should be TBD: %+v", final)
	}
	if !final.Date.Equal(kickoff("2026-07-19T19:00:00Z")) {
		t.Errorf("final Date = %v", final.Date)
	}
}

func TestFixtureUnmarshalBadDate(t *testing.T) {
	for _, raw := range []string{
		`{"home":"FRA","away":"ARG"}`,
		`{"date":"","home":"FRA"}`,
		`{"date":"sometime in june","home":"FRA"}`,
		`{"date":"June 15","home":"FRA"}`,
		`{"date":"1234","home":"FRA"}`,
	} {
		var f Fixture
		err := json.Unmarshal([]byte(raw), &f)
		if !errors.Is(err, ErrBadDate) {
			t.Errorf("Unmarshal(%s) err = %v; want ErrBadDate", raw, err)
		}
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	in := sampleDataset().Fixtures[3]
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var out Fixture
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !out.Date.Equal(in.Date) || out.Home != in.Home || out.Away != in.Away {
		t.Errorf("round trip = %+v; want %+v", out, in)
	}
}

func TestTeamUnmarshalOptionalFields(t *testing.T) {
	raw := `[{"code":"MEX","name":"Mexico","group":"A","ranking":15,"appearances":18,"host":true},
	         {"code":"CPV","name":"Cape Verde","group":"H"}]`
	var teams []Team
	if err := json.Unmarshal([]byte(raw), &teams); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if teams[0].Ranking == nil || *teams[0].Ranking != 15 || !teams[0].Host {
		t.Errorf("unexpected %+v", teams[0])
	}
	if teams[1].Ranking != nil || teams[1].Appearances != nil || teams[1].Host {
		t.Errorf("expected absent optional fields: %+v", teams[1])
	}
}
