package worktree

import (
	"fmt"
	"path/filepath"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/config"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/progress"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/store/object"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/util"
)

// Reset removes every top-level working-tree entry except the repository
// metadata directory and the legacy alias. This is the hard reset of the
// tracked area preceding materialization.
func Reset(root string) error {
	entries, err := fsio.ReadDir(root)
	if err != nil {
		return fmt.Errorf("read working root %q: %w", root, err)
	}
	for _, e := range entries {
		if e.Name() == config.RepoDir || e.Name() == config.LegacyRepoDir {
			continue
		}
		if err := fsio.RemoveAll(filepath.Join(root, e.Name())); err != nil {
			return fmt.Errorf("remove %q: %w", e.Name(), err)
		}
	}
	return nil
}

// Materialize writes every snapshot entry under root: parent directories
// are created, then blob bytes are written through a temp-and-rename.
// Blobs are content-addressed and immutable, so re-running after a crash
// converges to the same tree.
func Materialize(root string, snapshot map[string]string, objects *object.Store, label string) error {
	paths := util.SortedKeys(snapshot)

	bar := progress.NewProgress(len(paths), fmt.Sprintf("Restoring %s", label))
	defer bar.Finish()

	err := util.Parallel(paths, util.WorkerCount(), func(p string) error {
		data, err := objects.Get(snapshot[p])
		if err != nil {
			return fmt.Errorf("blob %s for %q: %w", snapshot[p], p, err)
		}
		if err := fsio.WriteFileAtomic(filepath.Join(root, filepath.FromSlash(p)), data, 0o644); err != nil {
			return err
		}
		bar.Increment()
		return nil
	})
	if err != nil {
		return fmt.Errorf("materialize snapshot: %w", err)
	}
	return nil
}
