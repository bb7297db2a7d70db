package offer2pdf

import "context"

// UploadResult is the immutable outcome of the upload stage.
// Success implies a public URL; failure implies an error detail.
// The zero value means "upload not attempted".
type UploadResult struct {
	Success bool
	URL     string // public URL, set iff Success
	Path    string // storage path within the bucket
	Err     string // error detail, set iff the upload was attempted and failed
}

// Uploader sends a finished artifact to an object store. The destination
// bucket is fixed when the uploader is constructed; uploads use
// overwrite-on-conflict semantics so an idempotent key replaces any
// previous artifact for the same offer.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte) UploadResult
}

// noopUploader keeps stage logic uniform when no object store is
// configured: it reports "not attempted" without an error.
type noopUploader struct{}

func (noopUploader) Upload(context.Context, string, []byte) UploadResult {
	return UploadResult{}
}

// Compile-time interface check.
var _ Uploader = noopUploader{}
