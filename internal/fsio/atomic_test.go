package fsio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
)

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "file.txt")
	if err := fsio.WriteFileAtomic(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := fsio.WriteFileAtomic(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fsio.WriteFileAtomic(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "two" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteFileAtomicNoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	if err := fsio.WriteFileAtomic(filepath.Join(dir, "file.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "file.txt" {
		t.Errorf("directory entries: %v", entries)
	}
}

// simulate a rename failure to cover the error path
func TestWriteFileAtomicRenameError(t *testing.T) {
	orig := fsio.Rename
	fsio.Rename = func(_, _ string) error { return errors.New("simulated rename error") }
	defer func() { fsio.Rename = orig }()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := fsio.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error when rename fails")
	}

	// the target must not exist and the temp file is cleaned up
	if _, err := os.Stat(path); err == nil {
		t.Error("target exists after failed rename")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("leftover entries after failure: %v", entries)
	}
}
