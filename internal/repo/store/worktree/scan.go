package worktree

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/config"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/digest"
)

// Scan enumerates every regular file under root and digests its content.
// Keys are root-relative, forward-slash normalized. Entries whose first
// path component is the repository metadata directory or the legacy alias
// are skipped, as is the ignore manifest at the root.
func Scan(root string, h *digest.Hasher) (map[string]string, error) {
	files := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == config.RepoDir || rel == config.LegacyRepoDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if firstComponent(rel) == config.RepoDir || firstComponent(rel) == config.LegacyRepoDir {
			return nil
		}
		if rel == config.IgnoreManifest {
			return nil
		}

		sum, err := h.File(path)
		if err != nil {
			return fmt.Errorf("digest %q: %w", rel, err)
		}
		files[rel] = sum
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan working tree %q: %w", root, err)
	}
	return files, nil
}

func firstComponent(rel string) string {
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		return rel[:i]
	}
	return rel
}
