/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package wcup

import (
	"unicode"
	"unicode/utf8"
)

type Role int

const (
	Home Role = iota
	Away
)

func (r Role) String() string {
	if r == Home {
		return "home"
	} else if r == Away {
		return "away"
	} else {
		return "?"
	}
}

// Side returns the home or away side of f.
func (f Fixture) Side(r Role) Side {
	if r == Away {
		return f.Away
	}
	return f.Home
}

// Participant is the display form of one fixture side.
type Participant struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// LabelSide resolves the code and label shown for one side of f, preferring
// the confirmed team over its pool placeholder.
func LabelSide(idx *Index, f Fixture, r Role) Participant {
	s := f.Side(r)
	if s.Code != "" {
		return Participant{Code: s.Code, Label: idx.ResolveName(s.Code)}
	}
	if s.Pool != "" {
		return Participant{Code: s.Pool, Label: idx.ResolveName(s.Pool)}
	}

	return Participant{Code: TBD, Label: TBD}
}

// StageLabel is "Group X" for group games, the capitalized stage name for
// knockout games and "TBD" when no stage is recorded.
func StageLabel(f Fixture) string {
	if f.Stage == GroupStage {
		return "Group " + f.Group
	}
	if f.Stage != "" {
		return capitalize(f.Stage)
	}

	return TBD
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
