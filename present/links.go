/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package present

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mikeb26/worldcup-teamviewer/wcup"
)

const matchLength = 2 * time.Hour

// CalendarLink returns a Google Calendar "add event" URL for the fixture.
func CalendarLink(fv wcup.FixtureView) string {
	const calFmt = "20060102T150405Z"
	start := fv.DateTime.UTC()
	end := start.Add(matchLength)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", fmt.Sprintf("%v vs %v", fv.Home.Label, fv.Away.Label))
	q.Set("dates", start.Format(calFmt)+"/"+end.Format(calFmt))
	q.Set("details", fv.StageLabel)
	q.Set("location", Venue(fv, ", "))

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

// MapLink returns a Google Maps search URL for the fixture's stadium.
func MapLink(fv wcup.FixtureView) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", Venue(fv, ", "))

	return "https://www.google.com/maps/search/?" + q.Encode()
}

// Venue joins stadium and city, skipping whichever is missing.
func Venue(fv wcup.FixtureView, sep string) string {
	if fv.Stadium == "" {
		return fv.City
	}
	if fv.City == "" {
		return fv.Stadium
	}
	return fv.Stadium + sep + fv.City
}
