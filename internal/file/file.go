// Package file implements the upload pipeline and retrieval of stored files.
package file

import "errors"

// Content types with special handling in the pipeline.
const (
	pdfContentType = "application/pdf"
	pngContentType = "image/png"
)

// filenameMetaKey is the user-metadata key carrying the original filename.
const filenameMetaKey = "filename"

// ErrMissingFile is returned when an upload request carries no file part.
var ErrMissingFile = errors.New("no file attached to request")

// ErrUnsupportedType is returned when the declared content type is neither
// an image subtype nor PDF. Nothing is written to the store.
var ErrUnsupportedType = errors.New("unsupported content type")

// ErrTransform is returned when image re-encoding fails.
var ErrTransform = errors.New("image transform failed")

// ErrStorageWrite is returned when the blob store fails while persisting.
var ErrStorageWrite = errors.New("storage write failed")

// ErrNotFound is returned when no stored object matches the requested
// identifier or filename.
var ErrNotFound = errors.New("file not found")

// ErrStorageRead is returned when an existence check, metadata fetch,
// listing, or URL signing fails against the store.
var ErrStorageRead = errors.New("storage read failed")

// Upload is the transient input to the pipeline: raw bytes plus the
// client-declared content type and original filename. It lives for one
// request only; its bytes may be transformed before storage.
type Upload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Descriptor is the access view returned by upload and retrieval operations.
// It is constructed fresh on every request and never persisted.
type Descriptor struct {
	ID          string
	URL         string
	ContentType string
	Extension   string
}

// extensionFor infers a display extension from the stored content type alone.
// It is a hint for clients, not validated against the stored bytes.
func extensionFor(contentType string) string {
	if contentType == pdfContentType {
		return ".pdf"
	}
	return ".png"
}
