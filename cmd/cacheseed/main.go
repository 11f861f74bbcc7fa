/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/mikeb26/worldcup-teamviewer/dataset"
	"github.com/mikeb26/worldcup-teamviewer/internal"
)

// this program exists just to seed the http cache with the configured
// datasets so that the viewer and bot start without hitting the origin

func main() {
	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("cacheseed.main: failed to load configuration: %v", err)
	}
	if !cfg.HasDatasetURLs() {
		fmt.Printf("no dataset urls configured; nothing to seed\n")
		return
	}

	ctx := context.Background()
	locs := dataset.LocationsFromConfig(cfg)
	f, err := dataset.NewFetcherFromConfig(ctx, cfg, locs)
	if err != nil {
		log.Fatalf("cacheseed.main: %v", err)
	}

	for _, loc := range []string{locs.Teams, locs.Fixtures, locs.Groups} {
		body, err := f.Fetch(ctx, loc)
		if err != nil {
			// best effort
			log.Printf("cacheseed.main: failed to seed %v: %v", loc, err)
			continue
		}

		fmt.Printf("seeded %v (%v bytes)\n", loc, len(body))
	}

	// a full load also validates what was cached
	if _, err := dataset.LoadCatalog(ctx, f, locs); err != nil {
		log.Fatalf("cacheseed.main: seeded datasets do not load: %v", err)
	}
}
