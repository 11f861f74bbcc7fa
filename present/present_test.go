/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package present

import (
	"testing"
	"time"

	"github.com/mikeb26/worldcup-teamviewer/wcup"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testCatalog(t *testing.T) *wcup.Catalog {
	t.Helper()
	ranking := 3
	c, err := wcup.NewCatalog(wcup.Dataset{
		Teams: []wcup.Team{
			{Code: "FRA", Name: "France", Group: "I", Ranking: &ranking},
			{Code: "SEN", Name: "Senegal", Group: "I"},
			{Code: "USA", Name: "United States", Group: "D", Host: true},
			{Code: "CUW", Name: "Curaçao", Group: "E"},
		},
		Groups: wcup.Groups{"I": {"FRA", "SEN", "IC_PO_2"}},
		Fixtures: []wcup.Fixture{
			{Date: at("2026-06-22T21:00:00Z"), Home: wcup.Side{Code: "FRA"}, Away: wcup.Side{Pool: "IC_PO_2"},
				Stage: "group", Group: "I", City: "Philadelphia", Stadium: "Lincoln Financial Field"},
			{Date: at("2026-06-16T19:00:00Z"), Home: wcup.Side{Code: "SEN"}, Away: wcup.Side{Code: "FRA"},
				Stage: "group", Group: "I", City: "New York New Jersey", Stadium: "MetLife Stadium"},
		},
	})
	if err != nil {
		t.Fatalf("NewCatalog returned error: %v", err)
	}
	return c
}
