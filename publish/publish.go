// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package publish copies generated report files to object storage.
package publish

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// A Bucket stores named objects.
type Bucket interface {
	// NewWriter returns a writer for the object name. The object
	// is stored when the writer is closed without error.
	NewWriter(ctx context.Context, name, contentType string) io.WriteCloser
}

// GCS is a Bucket in Google Cloud Storage.
type GCS struct {
	client *storage.Client
	bucket *storage.BucketHandle
}

// NewGCS connects to the Cloud Storage bucket named bucket. If
// credentialsFile is empty, Application Default Credentials are used.
func NewGCS(ctx context.Context, bucket, credentialsFile string) (*GCS, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, err
		}
		creds, err := google.CredentialsFromJSON(ctx, data, storage.ScopeReadWrite)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", credentialsFile, err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCS{client: client, bucket: client.Bucket(bucket)}, nil
}

func (g *GCS) NewWriter(ctx context.Context, name, contentType string) io.WriteCloser {
	w := g.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	return w
}

// Close releases the client's resources.
func (g *GCS) Close() error {
	return g.client.Close()
}

// ContentType returns the MIME type for a report file.
func ContentType(file string) string {
	if t := mime.TypeByExtension(filepath.Ext(file)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// Files uploads each local file in paths to b, as an object named by
// the file's base name under prefix. It returns the object names
// written before any error.
func Files(ctx context.Context, b Bucket, prefix string, paths []string) ([]string, error) {
	var names []string
	for _, p := range paths {
		name := path.Join(prefix, filepath.Base(p))
		if err := upload(ctx, b, name, p); err != nil {
			return names, fmt.Errorf("uploading %s: %w", p, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func upload(ctx context.Context, b Bucket, name, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := b.NewWriter(ctx, name, ContentType(file))
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
