/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

import (
	"testing"
	"time"
)

func intPtr(i int) *int { return &i }

func kickoff(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// sampleDataset is a small two group tournament with one playoff slot that
// is still open.
func sampleDataset() Dataset {
	return Dataset{
		Teams: []Team{
			{Code: "MEX", Name: "Mexico", Group: "A", Ranking: intPtr(15), Appearances: intPtr(18), Host: true},
			{Code: "KOR", Name: "Korea Republic", Group: "A", Ranking: intPtr(23), Appearances: intPtr(12)},
			{Code: "RSA", Name: "South Africa", Group: "A", Ranking: intPtr(60)},
			{Code: "FRA", Name: "France", Group: "B", Ranking: intPtr(2), Appearances: intPtr(17)},
			{Code: "ARG", Name: "Argentina", Group: "B", Ranking: intPtr(1), Appearances: intPtr(19)},
			{Code: "NOR", Name: "Norway", Group: "B"},
			{Code: "ZZZ", Name: "Unassigned", Group: "Q"},
		},
		Groups: Groups{
			"A": {"MEX", "RSA", "KOR", "UEFA_PO_D"},
			"B": {"FRA", "ARG", "NOR", "UEFA_PO_A"},
		},
		Fixtures: []Fixture{
			{Date: kickoff("2026-06-16T19:00:00Z"), Home: Side{Code: "ARG"}, Away: Side{Code: "FRA"}, Stage: "group", Group: "B", City: "Kansas City", Stadium: "Arrowhead"},
			{Date: kickoff("2026-06-11T19:00:00Z"), Home: Side{Code: "MEX"}, Away: Side{Code: "RSA"}, Stage: "group", Group: "A", City: "Mexico City", Stadium: "Estadio Azteca"},
			{Date: kickoff("2026-06-12T02:00:00Z"), Home: Side{Code: "KOR"}, Away: Side{Pool: "UEFA_PO_D"}, Stage: "group", Group: "A", City: "Guadalajara", Stadium: "Estadio Akron"},
			{Date: kickoff("2026-06-15T18:00:00Z"), Home: Side{Code: "FRA"}, Away: Side{Pool: "UEFA_PO_A"}, Stage: "group", Group: "B", City: "Miami", Stadium: "Hard Rock"},
			{Date: kickoff("2026-06-15T18:00:00Z"), Home: Side{Code: "NOR"}, Away: Side{Code: "ARG"}, Stage: "group", Group: "B", City: "Boston", Stadium: "Gillette"},
			{Date: kickoff("2026-06-22T21:00:00Z"), Home: Side{Pool: "UEFA_PO_A"}, Away: Side{Code: "ARG"}, Stage: "group", Group: "B", City: "Dallas", Stadium: "AT&T"},
			{Date: kickoff("2026-06-20T21:00:00Z"), Home: Side{Code: "NOR"}, Away: Side{Code: "FRA"}, Stage: "group", Group: "B", City: "Toronto", Stadium: "BMO Field"},
			{Date: kickoff("2026-06-29T20:00:00Z"), Home: Side{Pool: "1A"}, Away: Side{Pool: "2B"}, Stage: "round of 32", City: "Houston", Stadium: "NRG"},
			{Date: kickoff("2026-07-19T19:00:00Z"), Stage: "final", City: "New York", Stadium: "MetLife"},
		},
	}
}

func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(sampleDataset())
	if err != nil {
		t.Fatalf("NewCatalog returned error: %v", err)
	}
	return c
}

func sampleIndex(t *testing.T) (*Index, Dataset) {
	t.Helper()
	ds := sampleDataset()
	idx, err := Build(ds.Teams)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	return idx, ds
}
