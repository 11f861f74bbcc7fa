/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

// GroupOpponents returns the display names of the other members of team's
// group in assignment order. A team whose group has no assignment has no
// opponents.
func GroupOpponents(idx *Index, team Team, groups Groups) []string {
	members, ok := groups[team.Group]
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(members))
	for _, code := range members {
		if code == team.Code {
			continue
		}
		out = append(out, idx.ResolveName(code))
	}
	return out
}
