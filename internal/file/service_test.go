package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/filedrop/service/internal/storage"
)

// fakeStore is an in-memory storage.Storage. List returns objects in
// insertion order so by-name tie-break tests are deterministic.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string]fakeObject
	order   []string

	failUpload bool
	failRead   bool
}

type fakeObject struct {
	data        []byte
	contentType string
	metadata    map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string]fakeObject{}}
}

func (s *fakeStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string, metadata map[string]string) error {
	if s.failUpload {
		return errors.New("put object: connection reset")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = fakeObject{data: data, contentType: contentType, metadata: metadata}
	s.order = append(s.order, key)
	return nil
}

func (s *fakeStore) Exists(ctx context.Context, key string) (bool, error) {
	if s.failRead {
		return false, errors.New("stat object: connection reset")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *fakeStore) Stat(ctx context.Context, key string) (storage.ObjectInfo, error) {
	if s.failRead {
		return storage.ObjectInfo{}, errors.New("stat object: connection reset")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	if !ok {
		return storage.ObjectInfo{}, fmt.Errorf("no such key %q", key)
	}
	return storage.ObjectInfo{Key: key, ContentType: obj.contentType, Metadata: obj.metadata}, nil
}

func (s *fakeStore) List(ctx context.Context) ([]storage.ObjectInfo, error) {
	if s.failRead {
		return nil, errors.New("list objects: connection reset")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	infos := []storage.ObjectInfo{}
	for _, key := range s.order {
		obj := s.objects[key]
		infos = append(infos, storage.ObjectInfo{Key: key, ContentType: obj.contentType, Metadata: obj.metadata})
	}
	return infos, nil
}

func (s *fakeStore) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if s.failRead {
		return "", errors.New("presign: connection reset")
	}
	return "http://store.local/bucket/" + key + "?signed=true", nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "http://store.local/bucket/" + key
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// seqIDs hands out id-1, id-2, ... so tests can predict keys.
type seqIDs struct {
	n int
}

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestService(store *fakeStore) *Service {
	return NewService(store, &seqIDs{}, time.Hour)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestUploadImageStoredAsPNG(t *testing.T) {
	tests := []struct {
		name        string
		data        func(t *testing.T) []byte
		contentType string
	}{
		{"png input", func(t *testing.T) []byte { return pngBytes(t, 10, 10) }, "image/png"},
		{"jpeg input", func(t *testing.T) []byte { return jpegBytes(t, 64, 48) }, "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := newTestService(store)

			desc, err := svc.Upload(context.Background(), Upload{
				Data:        tt.data(t),
				ContentType: tt.contentType,
				Filename:    "photo",
			})
			if err != nil {
				t.Fatalf("upload: %v", err)
			}
			if desc.ContentType != "image/png" {
				t.Fatalf("descriptor content type = %q, want image/png", desc.ContentType)
			}

			obj := store.objects[desc.ID]
			if obj.contentType != "image/png" {
				t.Fatalf("stored content type = %q, want image/png", obj.contentType)
			}
			img, err := png.Decode(bytes.NewReader(obj.data))
			if err != nil {
				t.Fatalf("stored bytes are not png: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != 300 || b.Dy() != 300 {
				t.Fatalf("stored image is %dx%d, want 300x300", b.Dx(), b.Dy())
			}
		})
	}
}

func TestUploadPDFPassthrough(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	input := []byte("%PDF-1.4 fake document body")
	desc, err := svc.Upload(context.Background(), Upload{
		Data:        input,
		ContentType: "application/pdf",
		Filename:    "report.pdf",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if desc.ContentType != "application/pdf" {
		t.Fatalf("descriptor content type = %q, want application/pdf", desc.ContentType)
	}
	if desc.Extension != ".pdf" {
		t.Fatalf("extension = %q, want .pdf", desc.Extension)
	}

	obj := store.objects[desc.ID]
	if !bytes.Equal(obj.data, input) {
		t.Fatal("stored pdf bytes differ from input")
	}
	if obj.metadata[filenameMetaKey] != "report.pdf" {
		t.Fatalf("stored filename metadata = %q, want report.pdf", obj.metadata[filenameMetaKey])
	}
}

func TestUploadUnsupportedTypeWritesNothing(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), Upload{
		Data:        []byte("hello"),
		ContentType: "text/plain",
		Filename:    "notes.txt",
	})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("error = %v, want ErrUnsupportedType", err)
	}
	if len(store.objects) != 0 {
		t.Fatalf("store has %d objects, want 0", len(store.objects))
	}
}

func TestUploadCorruptImage(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), Upload{
		Data:        []byte("not an image at all"),
		ContentType: "image/png",
		Filename:    "broken.png",
	})
	if !errors.Is(err, ErrTransform) {
		t.Fatalf("error = %v, want ErrTransform", err)
	}
	if len(store.objects) != 0 {
		t.Fatalf("store has %d objects, want 0", len(store.objects))
	}
}

func TestUploadIdenticalBytesGetDistinctIDs(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	input := []byte("%PDF-1.4 same bytes")
	first, err := svc.Upload(context.Background(), Upload{Data: input, ContentType: "application/pdf", Filename: "a.pdf"})
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	second, err := svc.Upload(context.Background(), Upload{Data: input, ContentType: "application/pdf", Filename: "a.pdf"})
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("both uploads got id %q, want distinct ids", first.ID)
	}
	if len(store.objects) != 2 {
		t.Fatalf("store has %d objects, want 2", len(store.objects))
	}
}

func TestUploadStorageWriteError(t *testing.T) {
	store := newFakeStore()
	store.failUpload = true
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), Upload{
		Data:        []byte("%PDF-1.4"),
		ContentType: "application/pdf",
		Filename:    "a.pdf",
	})
	if !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("error = %v, want ErrStorageWrite", err)
	}
}

func TestGetByIDRoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	up, err := svc.Upload(context.Background(), Upload{
		Data:        pngBytes(t, 10, 10),
		ContentType: "image/jpeg",
		Filename:    "photo.jpg",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	desc, err := svc.GetByID(context.Background(), up.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if desc.ContentType != "image/png" {
		t.Fatalf("content type = %q, want image/png", desc.ContentType)
	}
	if desc.Extension != ".png" {
		t.Fatalf("extension = %q, want .png", desc.Extension)
	}
	if desc.URL == "" {
		t.Fatal("expected a signed url")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.GetByID(context.Background(), "never-created")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if !svc.IsNotFound(err) {
		t.Fatal("IsNotFound should report true")
	}
}

func TestGetByIDStorageReadError(t *testing.T) {
	store := newFakeStore()
	store.failRead = true
	svc := newTestService(store)

	_, err := svc.GetByID(context.Background(), "any")
	if !errors.Is(err, ErrStorageRead) {
		t.Fatalf("error = %v, want ErrStorageRead", err)
	}
}

func TestGetByNameFirstMatchWins(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	for i := 0; i < 3; i++ {
		_, err := svc.Upload(context.Background(), Upload{
			Data:        []byte(fmt.Sprintf("%%PDF-1.4 copy %d", i)),
			ContentType: "application/pdf",
			Filename:    "dup.pdf",
		})
		if err != nil {
			t.Fatalf("upload %d: %v", i, err)
		}
	}

	desc, err := svc.GetByName(context.Background(), "dup.pdf")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	// fakeStore enumerates in insertion order, so the first upload wins.
	if desc.ID != "id-1" {
		t.Fatalf("matched id = %q, want id-1", desc.ID)
	}
	if desc.ContentType != "application/pdf" {
		t.Fatalf("content type = %q, want application/pdf", desc.ContentType)
	}
}

func TestGetByNameIsCaseSensitive(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if _, err := svc.Upload(context.Background(), Upload{
		Data:        []byte("%PDF-1.4"),
		ContentType: "application/pdf",
		Filename:    "Report.pdf",
	}); err != nil {
		t.Fatalf("upload: %v", err)
	}

	if _, err := svc.GetByName(context.Background(), "report.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound for case mismatch", err)
	}
	if _, err := svc.GetByName(context.Background(), "Report.pdf"); err != nil {
		t.Fatalf("exact match failed: %v", err)
	}
}

func TestGetByNameNotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.GetByName(context.Background(), "missing.pdf")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestListURLs(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	urls, err := svc.ListURLs(context.Background())
	if err != nil {
		t.Fatalf("list on empty store: %v", err)
	}
	if len(urls) != 0 {
		t.Fatalf("empty store listed %d urls, want 0", len(urls))
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.Upload(context.Background(), Upload{
			Data:        []byte("%PDF-1.4"),
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("doc-%d.pdf", i),
		}); err != nil {
			t.Fatalf("upload %d: %v", i, err)
		}
	}

	urls, err = svc.ListURLs(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"http://store.local/bucket/id-1", "http://store.local/bucket/id-2"}
	if len(urls) != len(want) {
		t.Fatalf("listed %d urls, want %d", len(urls), len(want))
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Fatalf("urls[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestListURLsStorageReadError(t *testing.T) {
	store := newFakeStore()
	store.failRead = true
	svc := newTestService(store)

	_, err := svc.ListURLs(context.Background())
	if !errors.Is(err, ErrStorageRead) {
		t.Fatalf("error = %v, want ErrStorageRead", err)
	}
}
