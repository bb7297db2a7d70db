// Package objstore uploads finished PDF artifacts to Supabase Storage.
//
// The bucket is fixed at construction time and uploads use upsert
// semantics, so the pipeline's idempotent filenames overwrite previous
// artifacts for the same offer instead of accumulating copies.
package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"

	offer2pdf "github.com/alnah/go-offer2pdf"
)

// Sentinel errors for object store operations.
var (
	ErrMissingCredentials = errors.New("objstore: missing Supabase URL or key")
	ErrMissingBucket      = errors.New("objstore: bucket cannot be empty")
)

const pdfContentType = "application/pdf"

// Client uploads artifacts to one Supabase Storage bucket.
type Client struct {
	sb     *storage.Client
	bucket string
}

// New creates a Client for the given project and bucket.
func New(projectURL, apiKey, bucket string) (*Client, error) {
	if projectURL == "" || apiKey == "" {
		return nil, ErrMissingCredentials
	}
	if bucket == "" {
		return nil, ErrMissingBucket
	}
	return &Client{
		sb:     storage.NewClient(strings.TrimSuffix(projectURL, "/")+"/storage/v1", apiKey, nil),
		bucket: bucket,
	}, nil
}

// Compile-time interface check.
var _ offer2pdf.Uploader = (*Client)(nil)

// Upload upserts the artifact under the given key and returns the public
// URL. The Supabase client has no context support; ctx is honored by
// failing fast when it is already done.
func (c *Client) Upload(ctx context.Context, key string, data []byte) offer2pdf.UploadResult {
	if err := ctx.Err(); err != nil {
		return offer2pdf.UploadResult{Err: err.Error()}
	}

	key = strings.TrimPrefix(key, "/")
	contentType := pdfContentType
	upsert := true

	_, err := c.sb.UploadFile(c.bucket, key, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return offer2pdf.UploadResult{
			Path: key,
			Err:  fmt.Sprintf("uploading %s to bucket %s: %v", key, c.bucket, err),
		}
	}

	return offer2pdf.UploadResult{
		Success: true,
		URL:     c.PublicURL(key),
		Path:    key,
	}
}

// PublicURL returns the public URL for a key in the bucket.
func (c *Client) PublicURL(key string) string {
	return c.sb.GetPublicUrl(c.bucket, strings.TrimPrefix(key, "/")).SignedURL
}

// Remove deletes objects from the bucket.
func (c *Client) Remove(keys ...string) error {
	if _, err := c.sb.RemoveFile(c.bucket, keys); err != nil {
		return fmt.Errorf("objstore: removing %v: %w", keys, err)
	}
	return nil
}

// List returns the object names at the root of the bucket.
func (c *Client) List() ([]string, error) {
	files, err := c.sb.ListFiles(c.bucket, "", storage.FileSearchOptions{})
	if err != nil {
		return nil, fmt.Errorf("objstore: listing bucket %s: %w", c.bucket, err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names, nil
}
