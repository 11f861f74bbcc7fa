/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

// Comparison describes two teams side by side.
type Comparison struct {
	A         *TeamSnapshot `json:"a"`
	B         *TeamSnapshot `json:"b"`
	SameGroup bool          `json:"sameGroup"`
	// Fixtures where a and b are both confirmed, in kickoff order and
	// labelled from a's point of view.
	Fixtures []FixtureView `json:"fixtures"`
}

// Compare builds the Comparison of the teams with codes a and b.
func (c *Catalog) Compare(a, b string) Comparison {
	cmp := Comparison{
		A:        c.Snapshot(a),
		B:        c.Snapshot(b),
		Fixtures: []FixtureView{},
	}
	if cmp.A != nil && cmp.B != nil {
		cmp.SameGroup = cmp.A.Group != "" && cmp.A.Group == cmp.B.Group
	}
	if a == "" || b == "" || a == b {
		return cmp
	}

	for _, f := range SelectFixtures(c.fixtures, a) {
		if f.Home.Code == b || f.Away.Code == b {
			cmp.Fixtures = append(cmp.Fixtures, c.fixtureView(f, a))
		}
	}
	return cmp
}
