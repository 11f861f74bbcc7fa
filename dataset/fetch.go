/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mikeb26/worldcup-teamviewer/internal"
)

var ErrUnsupportedLocation = errors.New("unsupported dataset location")

// Fetcher retrieves the raw bytes of one dataset document.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// ObjectGetter is the subset of *s3.Client used for s3:// locations.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput,
		optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// LocationFetcher reads http(s)://, s3:// and local file locations.
type LocationFetcher struct {
	HTTP *http.Client
	// S3 may be nil when no s3:// locations are used.
	S3 ObjectGetter
}

func NewFetcher(httpClient *http.Client, s3Client ObjectGetter) *LocationFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &LocationFetcher{HTTP: httpClient, S3: s3Client}
}

func (lf *LocationFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// plain paths (including windows drive letters) are local files
		return os.ReadFile(location)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return lf.fetchHTTP(ctx, location)
	case "s3":
		return lf.fetchS3(ctx, u)
	case "file":
		return os.ReadFile(u.Path)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedLocation, location)
	}
}

func (lf *LocationFetcher) fetchHTTP(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", location, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %v (new): %w", location, err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := lf.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %v (do): %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v (http): %v", location, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %v (read): %w", location, err)
	}
	return data, nil
}

func (lf *LocationFetcher) fetchS3(ctx context.Context, u *url.URL) ([]byte, error) {
	if lf.S3 == nil {
		return nil, fmt.Errorf("%w %v: no s3 client configured", ErrUnsupportedLocation, u)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return nil, fmt.Errorf("%w %v: want s3://bucket/key", ErrUnsupportedLocation, u)
	}

	out, err := lf.S3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.Host),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %v (s3): %w", u, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %v (read): %w", u, err)
	}
	return data, nil
}
