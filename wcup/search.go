/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrTeamNotFound  = errors.New("no team matches")
	ErrAmbiguousTeam = errors.New("more than one team matches")
)

// FindTeam resolves free-form user input to a team. An exact code or name
// match (ignoring case) wins; otherwise the closest fuzzy name match is used
// as long as it is unique.
func (idx *Index) FindTeam(query string) (Team, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Team{}, fmt.Errorf("%w %q", ErrTeamNotFound, query)
	}
	if t, ok := idx.byCode[strings.ToUpper(q)]; ok {
		return t, nil
	}

	names := make([]string, len(idx.teams))
	for i, t := range idx.teams {
		if strings.EqualFold(t.Name, q) {
			return t, nil
		}
		names[i] = t.Name
	}

	ranks := fuzzy.RankFindFold(q, names)
	if len(ranks) == 0 {
		return Team{}, fmt.Errorf("%w %q", ErrTeamNotFound, query)
	}
	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		var candidates []string
		for _, r := range ranks {
			if r.Distance != ranks[0].Distance {
				break
			}
			candidates = append(candidates, r.Target)
		}
		return Team{}, fmt.Errorf("%w %q: %v", ErrAmbiguousTeam, query,
			strings.Join(candidates, ", "))
	}

	return idx.teams[ranks[0].OriginalIndex], nil
}
