// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO, AWS S3, Ceph RGW).
package storage

import (
	"context"
	"io"
	"time"
)

// ObjectInfo describes one stored object: its key, content type, and the
// user metadata attached at upload time.
type ObjectInfo struct {
	Key         string
	ContentType string
	Metadata    map[string]string
}

// Storage is the interface for uploading and retrieving objects.
type Storage interface {
	// Upload streams data to the store under the given key. The call blocks
	// until the store acknowledges the write; it must not be treated as
	// fire-and-forget.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string, metadata map[string]string) error
	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
	// Stat fetches the content type and user metadata for key.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// List enumerates every stored object. Order is store-defined and not
	// guaranteed stable across calls.
	List(ctx context.Context) ([]ObjectInfo, error)
	// SignedURL mints a time-limited read URL for the object at key.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
}
