/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var ErrDuplicateTeam = errors.New("duplicate team code")

// Index resolves team codes to teams.
type Index struct {
	byCode map[string]Team
	teams  []Team
}

// Build indexes teams by code. Two teams sharing a code is a data error.
func Build(teams []Team) (*Index, error) {
	idx := &Index{
		byCode: make(map[string]Team, len(teams)),
		teams:  make([]Team, 0, len(teams)),
	}
	for _, t := range teams {
		if prev, ok := idx.byCode[t.Code]; ok {
			return nil, fmt.Errorf("%w %q (%v and %v)", ErrDuplicateTeam,
				t.Code, prev.Name, t.Name)
		}
		idx.byCode[t.Code] = t
		idx.teams = append(idx.teams, t)
	}

	return idx, nil
}

func (idx *Index) Lookup(code string) (Team, bool) {
	t, ok := idx.byCode[code]
	return t, ok
}

func (idx *Index) Len() int {
	return len(idx.teams)
}

// Teams returns the teams in load order.
func (idx *Index) Teams() []Team {
	out := make([]Team, len(idx.teams))
	copy(out, idx.teams)
	return out
}

// SortedByName returns the teams ordered by display name, which is how team
// pickers list them.
func (idx *Index) SortedByName() []Team {
	out := idx.Teams()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if a != b {
			return a < b
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ResolveName returns the display name for code: "TBD" for an empty code, the
// team name for a known code, else the code rendered as a placeholder.
func (idx *Index) ResolveName(code string) string {
	if code == "" {
		return TBD
	}
	if t, ok := idx.byCode[code]; ok {
		return t.Name
	}

	return PrettifyPlaceholder(code)
}

var confederationRE = regexp.MustCompile(`(?i)\b(uefa|conmebol|concacaf)\b`)

// PrettifyPlaceholder renders a pool placeholder such as "UEFA_PO_A/B" for
// display ("UEFA PO A / B").
func PrettifyPlaceholder(code string) string {
	if code == "" {
		return TBD
	}
	s := strings.ReplaceAll(code, "_", " ")
	s = strings.ReplaceAll(s, "/", " / ")

	return confederationRE.ReplaceAllStringFunc(s, strings.ToUpper)
}
