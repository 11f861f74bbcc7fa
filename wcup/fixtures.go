/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

import "slices"

// SelectFixtures returns the fixtures in which code is a confirmed
// participant, in kickoff order. Fixtures with the same kickoff keep their
// input order. A side known only by its pool never matches, even when code
// will eventually come out of that pool.
func SelectFixtures(fixtures []Fixture, code string) []Fixture {
	out := []Fixture{}
	if code == "" {
		return out
	}

	for _, f := range fixtures {
		if f.Home.Code == code || f.Away.Code == code {
			out = append(out, f)
		}
	}
	slices.SortStableFunc(out, func(a, b Fixture) int {
		return a.Date.Compare(b.Date)
	})

	return out
}
