/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrEmptyDate      = errors.New("empty date")
	ErrIncompleteDate = errors.New("date has no plausible year")
)

// earliest year accepted for a fixture; dateparse fills in year 0 for inputs
// like "June 15" and reads a bare "1234" as a year
const minFixtureYear = 1900

// ParseDate parses a fixture timestamp. RFC 3339 is tried first; other
// layouts go through dateparse, with timestamps lacking a zone interpreted
// as UTC. An empty or "null" value, or one that yields no plausible year, is
// an error.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return time.Time{}, ErrEmptyDate
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = dateparse.ParseIn(s, time.UTC)
		if err != nil {
			return time.Time{}, err
		}
	}
	if t.Year() < minFixtureYear {
		return time.Time{}, fmt.Errorf("%w: %q", ErrIncompleteDate, s)
	}

	return t.UTC(), nil
}
