/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that stores
 * cached dataset responses in Amazon S3 using aws-sdk-go-v2.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const defaultPrefix = "s3cache"

// Options controls where and how cache entries are stored.
type Options struct {
	// Bucket is the S3 bucket holding cache entries.
	Bucket string

	// Prefix is prepended to every object key; defaults to "s3cache".
	Prefix string

	// Gzip compresses entries on Set and decompresses them on Get. Object
	// keys get a ".gz" suffix.
	Gzip bool

	LogErrors bool
}

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Client is the s3 client used by the cache. Init() builds one from the
	// default AWS config; callers may instead assign their own before use.
	Client ObjectAPI

	opts Options
	ctx  context.Context
}

// ObjectAPI is the subset of *s3.Client the cache needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput,
		optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput,
		optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput,
		optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// New returns a Cache backed by the bucket in opts. Callers should invoke
// Init() (or assign Client) before use.
func New(ctx context.Context, opts Options) *Cache {
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	return &Cache{
		ctx:  ctx,
		opts: opts,
	}
}

// Init loads the default AWS configuration (environment, shared config and
// credentials files) and verifies the bucket is reachable and listable.
func (c *Cache) Init() error {
	cfg, err := config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)

	if _, err = client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.opts.Bucket),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w", c.opts.Bucket, err)
	}

	if _, err = client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.opts.Bucket),
		Prefix:  aws.String(c.opts.Prefix + "/"),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w", c.opts.Bucket, err)
	}

	c.Client = client
	return nil
}

// Get returns the cached response bytes for key.
func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var apiErr smithy.APIError
		// no such key just indicates a cache miss
		if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			c.logf("s3cache.get: failed to get object %v/%v: %v", c.opts.Bucket, objKey, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	var rdr io.Reader = resp.Body
	if c.opts.Gzip {
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			c.logf("s3cache.get: failed to open compressed object %v/%v: %v",
				c.opts.Bucket, objKey, err)
			return nil, false
		}
		defer gr.Close()
		rdr = gr
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		c.logf("s3cache.get: failed to read object %v/%v: %v", c.opts.Bucket, objKey, err)
		return nil, false
	}

	return data, true
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.objectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}

	if c.opts.Gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			c.logf("s3cache.set: failed to gzip data for %v/%v: %v", c.opts.Bucket, objKey, err)
			return
		}
		if err := gw.Close(); err != nil {
			c.logf("s3cache.set: failed to close gzip writer for %v/%v: %v",
				c.opts.Bucket, objKey, err)
			return
		}
		input.Body = bytes.NewReader(buf.Bytes())
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		c.logf("s3cache.set: put failed for %v/%v: %v", c.opts.Bucket, objKey, err)
	}
}

// Delete removes the entry for key.
func (c *Cache) Delete(key string) {
	objKey := c.objectKey(key)
	_, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		c.logf("s3cache.delete: delete failed for %v/%v: %v", c.opts.Bucket, objKey, err)
	}
}

func (c *Cache) objectKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	objKey := path.Join(c.opts.Prefix, hex.EncodeToString(h.Sum(nil)))
	if c.opts.Gzip {
		objKey += ".gz"
	}

	return objKey
}

func (c *Cache) logf(format string, args ...any) {
	if c.opts.LogErrors {
		log.Printf(format, args...)
	}
}
