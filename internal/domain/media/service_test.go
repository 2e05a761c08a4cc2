package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
)

type fakeStore struct {
	objects map[string]fakeObject
}

type fakeObject struct {
	data        []byte
	contentType string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string]fakeObject)}
}

func (f *fakeStore) Put(_ context.Context, key, contentType string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = fakeObject{data: data, contentType: contentType}
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (*Object, error) {
	obj, ok := f.objects[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &Object{
		Body:          io.NopCloser(bytes.NewReader(obj.data)),
		ContentType:   obj.contentType,
		ContentLength: int64(len(obj.data)),
	}, nil
}

var keyPattern = regexp.MustCompile(`^\d{13}-[0-9a-f]{8}\.PNG$`)

func TestIngestPreservesExtensionVerbatim(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, "https://howdythrift.farewellcafe.com/")

	payload := []byte{0x89, 'P', 'N', 'G'}
	upload, err := svc.Ingest(context.Background(), bytes.NewReader(payload), "photo.PNG", "image/png")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	if !strings.HasSuffix(upload.Filename, ".PNG") {
		t.Fatalf("expected extension preserved verbatim, got %q", upload.Filename)
	}
	if !keyPattern.MatchString(upload.Filename) {
		t.Fatalf("unexpected filename shape: %q", upload.Filename)
	}
	if upload.URL != "https://howdythrift.farewellcafe.com/media/"+upload.Filename {
		t.Fatalf("unexpected URL: %q", upload.URL)
	}
}

func TestIngestRoundTripsBytesAndContentType(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, "http://localhost:8080")

	payload := []byte("gif bytes")
	upload, err := svc.Ingest(context.Background(), bytes.NewReader(payload), "dance.gif", "image/gif")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	obj, err := svc.Fetch(context.Background(), upload.Filename)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	defer obj.Body.Close()

	got, err := io.ReadAll(obj.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("bytes did not round-trip: got %q", got)
	}
	if obj.ContentType != "image/gif" {
		t.Fatalf("expected stored content type, got %q", obj.ContentType)
	}
}

func TestIngestNameWithoutExtension(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, "http://localhost:8080")

	upload, err := svc.Ingest(context.Background(), strings.NewReader("x"), "README", "text/plain")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if strings.Contains(upload.Filename, ".") {
		t.Fatalf("expected no extension, got %q", upload.Filename)
	}
}

func TestIngestUniqueKeys(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, "http://localhost:8080")

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		upload, err := svc.Ingest(context.Background(), strings.NewReader("x"), "a.jpg", "image/jpeg")
		if err != nil {
			t.Fatalf("ingest: %v", err)
		}
		if seen[upload.Filename] {
			t.Fatalf("duplicate key generated: %q", upload.Filename)
		}
		seen[upload.Filename] = true
	}
}

func TestFetchMissing(t *testing.T) {
	svc := NewService(newFakeStore(), "http://localhost:8080")
	if _, err := svc.Fetch(context.Background(), "nope.png"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
