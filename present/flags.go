/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package present

import "fmt"

// flagIDs maps team codes to flagcdn image ids. It is configuration, never
// consulted by the core.
var flagIDs = map[string]string{
	"ALG": "dz", "ARG": "ar", "AUS": "au", "AUT": "at", "BEL": "be",
	"BRA": "br", "CAN": "ca", "CIV": "ci", "COL": "co", "CPV": "cv",
	"CRO": "hr", "CUW": "cw", "ECU": "ec", "EGY": "eg", "ENG": "gb-eng",
	"ESP": "es", "FRA": "fr", "GER": "de", "GHA": "gh", "HAI": "ht",
	"IRN": "ir", "JOR": "jo", "JPN": "jp", "KOR": "kr", "KSA": "sa",
	"MAR": "ma", "MEX": "mx", "NED": "nl", "NOR": "no", "NZL": "nz",
	"PAN": "pa", "PAR": "py", "POR": "pt", "QAT": "qa", "RSA": "za",
	"SCO": "gb-sct", "SEN": "sn", "SUI": "ch", "TUN": "tn", "URU": "uy",
	"USA": "us", "UZB": "uz",
}

// FlagID returns the flag image id for a team code.
func FlagID(code string) (string, bool) {
	id, ok := flagIDs[code]
	return id, ok
}

// FlagURL returns a small flag image URL for code, or "" when there is no
// flag (e.g. pool placeholders).
func FlagURL(code string) string {
	id, ok := FlagID(code)
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://flagcdn.com/w40/%v.png", id)
}
