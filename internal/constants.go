/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import "time"

const (
	UserAgent      = "worldcup-teamviewer/0.3.0 (+https://github.com/mikeb26/worldcup-teamviewer)"
	WebCacheBucket = "bopmatic-worldcup-teamviewer-prod-webcache"

	DefaultCacheTTL   = 24 * time.Hour
	DefaultListenAddr = ":8080"
	DefaultRateLimit  = 10.0
)
