package repo

import (
	"fmt"
	"path/filepath"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
)

// Add stores the file's current content as a blob and stages it. The path
// is taken relative to the working root, forward-slash normalized.
func (r *Repository) Add(paths ...string) error {
	ix, err := r.LoadIndex()
	if err != nil {
		return err
	}

	for _, p := range paths {
		rel, err := r.normalizePath(p)
		if err != nil {
			return err
		}

		abs := filepath.Join(r.Config.WorkRoot, filepath.FromSlash(rel))
		data, err := fsio.ReadFile(abs)
		if err != nil {
			return fmt.Errorf("file not found: %q", p)
		}

		d, err := r.Objects.Put(data)
		if err != nil {
			return err
		}
		ix.Stage(rel, d)
	}

	return ix.Save()
}

// Remove unstages the path if staged and marks it for deletion in the
// next commit.
func (r *Repository) Remove(paths ...string) error {
	ix, err := r.LoadIndex()
	if err != nil {
		return err
	}

	for _, p := range paths {
		rel, err := r.normalizePath(p)
		if err != nil {
			return err
		}
		ix.MarkRemoved(rel)
	}

	return ix.Save()
}

// normalizePath cleans a user-supplied path into a working-root-relative,
// forward-slash form and rejects escapes above the root.
func (r *Repository) normalizePath(p string) (string, error) {
	rel := filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
	if rel == "." || rel == "" {
		return "", fmt.Errorf("invalid path %q", p)
	}
	if filepath.IsAbs(p) {
		abs, err := filepath.Rel(r.Config.WorkRoot, filepath.Clean(p))
		if err != nil {
			return "", fmt.Errorf("path %q is outside the working tree", p)
		}
		rel = filepath.ToSlash(abs)
	}
	if rel == ".." || len(rel) >= 3 && rel[:3] == "../" {
		return "", fmt.Errorf("path %q is outside the working tree", p)
	}
	return rel, nil
}
