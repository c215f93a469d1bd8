package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/filedrop/service/internal/identifier"
	"github.com/filedrop/service/internal/storage"
)

// Service contains the upload pipeline and retrieval logic.
type Service struct {
	store        storage.Storage
	ids          identifier.Generator
	signedURLTTL time.Duration
}

// NewService creates a new file Service.
func NewService(store storage.Storage, ids identifier.Generator, signedURLTTL time.Duration) *Service {
	return &Service{store: store, ids: ids, signedURLTTL: signedURLTTL}
}

// Upload runs the pipeline for one file: classify by declared content type,
// transform images to 300×300 PNG, pass PDFs through unchanged, then persist
// under a freshly generated identifier with the original filename attached as
// metadata. The store write is awaited; Upload does not return before the
// store acknowledges it.
func (s *Service) Upload(ctx context.Context, up Upload) (*Descriptor, error) {
	if len(up.Data) == 0 && up.Filename == "" {
		return nil, ErrMissingFile
	}

	data := up.Data
	contentType := up.ContentType

	switch {
	case strings.HasPrefix(up.ContentType, "image/"):
		transformed, err := transformImage(up.Data)
		if err != nil {
			return nil, err
		}
		data = transformed
		contentType = pngContentType
	case up.ContentType == pdfContentType:
		// stored byte-identical
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, up.ContentType)
	}

	id := s.ids.Generate()
	meta := map[string]string{filenameMetaKey: up.Filename}
	if err := s.store.Upload(ctx, id, bytes.NewReader(data), int64(len(data)), contentType, meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return &Descriptor{
		ID:          id,
		URL:         s.store.PublicURL(id),
		ContentType: contentType,
		Extension:   extensionFor(contentType),
	}, nil
}

// GetByID resolves a stored object by identifier and mints a signed URL for it.
func (s *Service) GetByID(ctx context.Context, id string) (*Descriptor, error) {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	info, err := s.store.Stat(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	url, err := s.store.SignedURL(ctx, id, s.signedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	return &Descriptor{
		ID:          id,
		URL:         url,
		ContentType: info.ContentType,
		Extension:   extensionFor(info.ContentType),
	}, nil
}

// GetByName scans the full store listing for the first object whose recorded
// original filename matches name exactly (case-sensitive). Enumeration order
// is store-defined and not stable across calls, so ties between duplicate
// filenames resolve arbitrarily. O(total objects) per call.
func (s *Service) GetByName(ctx context.Context, name string) (*Descriptor, error) {
	objects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	for _, obj := range objects {
		if obj.Metadata[filenameMetaKey] != name {
			continue
		}
		url, err := s.store.SignedURL(ctx, obj.Key, s.signedURLTTL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
		}
		return &Descriptor{
			ID:          obj.Key,
			URL:         url,
			ContentType: obj.ContentType,
			Extension:   extensionFor(obj.ContentType),
		}, nil
	}

	return nil, ErrNotFound
}

// ListURLs enumerates all stored objects as public URLs, in store
// enumeration order. An empty store yields an empty slice, not an error.
func (s *Service) ListURLs(ctx context.Context) ([]string, error) {
	objects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	urls := make([]string, 0, len(objects))
	for _, obj := range objects {
		urls = append(urls, s.store.PublicURL(obj.Key))
	}
	return urls, nil
}

// IsNotFound returns true when the error indicates a missing file.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
