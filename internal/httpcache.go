/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/worldcup-teamviewer/s3cache"
)

// NewCachedHttpClient returns an http.Client that caches dataset responses.
// With a non-empty bucket the cache lives in S3; if the bucket is empty or
// cannot be initialized, an in-memory cache is used instead. Origin cache
// headers are rewritten so that every response is kept for maxAge.
func NewCachedHttpClient(ctx context.Context, bucket string,
	maxAge time.Duration) *http.Client {

	var cache httpcache.Cache
	if bucket != "" {
		s3c := s3cache.New(ctx, s3cache.Options{
			Bucket:    bucket,
			Prefix:    "datasets",
			Gzip:      true,
			LogErrors: true,
		})
		if err := s3c.Init(); err != nil {
			log.Printf("httpcache: warning failed to init S3 cache: %v; falling back to in-memory cache", err)
		} else {
			cache = s3c
		}
	}
	if cache == nil {
		cache = httpcache.NewMemoryCache()
	}

	return newCachedHttpClient(cache, http.DefaultTransport, maxAge)
}

func newCachedHttpClient(cache httpcache.Cache, base http.RoundTripper,
	maxAge time.Duration) *http.Client {

	hc := httpcache.NewTransport(cache)
	// origin servers for static datasets often send no-cache headers; override
	// them so the TTL is ours
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: base,
		Request: func(req *http.Request) {
			if req.Header.Get("User-Agent") == "" {
				req.Header.Set("User-Agent", UserAgent)
			}
		},
		Response: func(resp *http.Response) error {
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			resp.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	// Underlying RoundTripper (e.g. default transport or another decorator)
	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don’t stomp on the caller’s original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}
	return resp, nil
}
