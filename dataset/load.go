/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package dataset

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/worldcup-teamviewer/wcup"
)

// Locations names where each of the three documents lives.
type Locations struct {
	Teams    string
	Fixtures string
	Groups   string
}

//go:embed data/*.json
var snapshot embed.FS

// Load fetches the three documents concurrently and decodes them. Either all
// of them load or Load fails; there is no partial dataset.
func Load(ctx context.Context, f Fetcher, locs Locations) (*wcup.Dataset, error) {
	start := time.Now()
	var ds wcup.Dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fetchInto(gctx, f, "teams", locs.Teams, &ds.Teams)
	})
	g.Go(func() error {
		return fetchInto(gctx, f, "fixtures", locs.Fixtures, &ds.Fixtures)
	})
	g.Go(func() error {
		return fetchInto(gctx, f, "groups", locs.Groups, &ds.Groups)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("dataset.load: loaded %v teams, %v fixtures, %v groups in %v",
		len(ds.Teams), len(ds.Fixtures), len(ds.Groups), time.Since(start))
	return &ds, nil
}

// LoadCatalog loads the documents and builds the catalog from them.
func LoadCatalog(ctx context.Context, f Fetcher, locs Locations) (*wcup.Catalog, error) {
	ds, err := Load(ctx, f, locs)
	if err != nil {
		return nil, err
	}
	return wcup.NewCatalog(*ds)
}

// Snapshot returns the dataset bundled with the binary.
func Snapshot() (*wcup.Dataset, error) {
	return Load(context.Background(), embedFetcher{}, SnapshotLocations)
}

var SnapshotLocations = Locations{
	Teams:    "data/teams.json",
	Fixtures: "data/fixtures.json",
	Groups:   "data/groups.json",
}

type embedFetcher struct{}

func (embedFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	return snapshot.ReadFile(location)
}

func fetchInto(ctx context.Context, f Fetcher, name string, location string,
	out any) error {

	if location == "" {
		return fmt.Errorf("unable to load %v: no location", name)
	}
	data, err := f.Fetch(ctx, location)
	if err != nil {
		return fmt.Errorf("unable to load %v: %w", name, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("unable to parse %v from %v: %w", name, location, err)
	}
	return nil
}
