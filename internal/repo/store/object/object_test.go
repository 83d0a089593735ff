package object_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/digest"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/store/object"
)

func newTestStore(t *testing.T) *object.Store {
	t.Helper()
	h, err := digest.New(digest.FormatSHA256)
	if err != nil {
		t.Fatal(err)
	}
	return object.New(filepath.Join(t.TempDir(), "objects"), h)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	content := []byte("blob content\n")
	d, err := s.Put(content)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if d != s.Hash.Sum(content) {
		t.Errorf("Put returned %q, want content digest %q", d, s.Hash.Sum(content))
	}

	got, err := s.Get(d)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Get = %q, want %q", got, content)
	}
}

func TestPutIdempotent(t *testing.T) {
	s := newTestStore(t)

	content := []byte("same bytes")
	d1, err := s.Put(content)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := s.Put(content)
	if err != nil {
		t.Fatalf("second Put: %v", err)
	}
	if d1 != d2 {
		t.Errorf("duplicate Put returned %q and %q", d1, d2)
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("store holds %d entries, want 1", len(entries))
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get("deadbeef"); !errors.Is(err, object.ErrNotFound) {
		t.Errorf("Get of missing object = %v, want ErrNotFound", err)
	}
}

func TestExists(t *testing.T) {
	s := newTestStore(t)
	d, err := s.Put([]byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Exists(d) {
		t.Error("Exists = false for stored object")
	}
	if s.Exists("deadbeef") {
		t.Error("Exists = true for missing object")
	}
}

func TestPutLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Put([]byte("content")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name()[0] == '.' {
			t.Errorf("leftover temp file %q in store", e.Name())
		}
	}
}
