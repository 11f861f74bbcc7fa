/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package dataset

import (
	"context"
	"fmt"
	"log"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mikeb26/worldcup-teamviewer/internal"
	"github.com/mikeb26/worldcup-teamviewer/wcup"
)

// LocationsFromConfig returns the configured dataset locations.
func LocationsFromConfig(cfg *internal.Config) Locations {
	return Locations{
		Teams:    cfg.TeamsURL,
		Fixtures: cfg.FixturesURL,
		Groups:   cfg.GroupsURL,
	}
}

// CatalogFromConfig loads the catalog the binaries serve: the embedded
// snapshot when no dataset URLs are configured, otherwise the configured
// documents fetched through the dataset http cache.
func CatalogFromConfig(ctx context.Context, cfg *internal.Config) (*wcup.Catalog, error) {
	if !cfg.HasDatasetURLs() {
		log.Printf("dataset.config: no dataset urls configured; using embedded snapshot")
		ds, err := Snapshot()
		if err != nil {
			return nil, err
		}
		return wcup.NewCatalog(*ds)
	}

	locs := LocationsFromConfig(cfg)
	f, err := NewFetcherFromConfig(ctx, cfg, locs)
	if err != nil {
		return nil, err
	}
	return LoadCatalog(ctx, f, locs)
}

// NewFetcherFromConfig builds a fetcher with a cached http client and, when
// any location uses s3://, an S3 client from the default AWS config.
func NewFetcherFromConfig(ctx context.Context, cfg *internal.Config,
	locs Locations) (*LocationFetcher, error) {

	httpClient := internal.NewCachedHttpClient(ctx, cfg.CacheBucket, cfg.CacheTTL)

	var s3Client ObjectGetter
	for _, l := range []string{locs.Teams, locs.Fixtures, locs.Groups} {
		if strings.HasPrefix(strings.ToLower(l), "s3://") {
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return nil, fmt.Errorf("unable to load AWS config: %w", err)
			}
			s3Client = s3.NewFromConfig(awsCfg)
			break
		}
	}

	return NewFetcher(httpClient, s3Client), nil
}
