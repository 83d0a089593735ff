package meta

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
)

// ErrBranchNotFound reports a branch name with no ref file.
var ErrBranchNotFound = errors.New("branch not found")

// Branch is a named pointer to a commit digest. Digest is "" for an unborn
// branch (ref file exists but points to no commit).
type Branch struct {
	Name   string
	Digest string
}

// ValidateBranchName rejects empty, whitespace-containing, or
// slash-containing names.
func ValidateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid branch name: empty")
	}
	if strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("invalid branch name %q: contains whitespace", name)
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("invalid branch name %q: contains '/'", name)
	}
	return nil
}

// GetBranch resolves a branch name to its commit digest. An existing ref
// file with empty content is an unborn branch ("" digest, nil error).
func (mc *MetaContext) GetBranch(name string) (string, error) {
	data, err := fsio.ReadFile(mc.Config.BranchFile(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("branch %q: %w", name, ErrBranchNotFound)
		}
		return "", fmt.Errorf("failed to read branch %q: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// BranchExists checks for branch existence (fast).
func (mc *MetaContext) BranchExists(name string) bool {
	fi, err := fsio.StatFile(mc.Config.BranchFile(name))
	return err == nil && fi.Mode().IsRegular()
}

// SetBranch creates or updates a branch ref. The write is atomic at the
// single-ref granularity; concurrent updates are last-writer-wins.
func (mc *MetaContext) SetBranch(name, commitDigest string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}
	if err := fsio.WriteFileAtomic(mc.Config.BranchFile(name), []byte(commitDigest), 0o644); err != nil {
		return fmt.Errorf("failed to write branch %q: %w", name, err)
	}
	return nil
}

// DeleteBranch removes a branch ref. Deleting the branch HEAD is attached
// to is forbidden.
func (mc *MetaContext) DeleteBranch(name string) error {
	if !mc.BranchExists(name) {
		return fmt.Errorf("branch %q: %w", name, ErrBranchNotFound)
	}

	head, err := mc.ReadHead()
	if err != nil {
		return err
	}
	if !head.Detached && head.Branch == name {
		return fmt.Errorf("cannot delete branch %q: HEAD is attached to it", name)
	}

	if err := fsio.Remove(mc.Config.BranchFile(name)); err != nil {
		return fmt.Errorf("failed to delete branch %q: %w", name, err)
	}
	return nil
}

// ListBranches returns all branches sorted by name.
func (mc *MetaContext) ListBranches() ([]Branch, error) {
	dirEntries, err := fsio.ReadDir(mc.Config.RefsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read refs directory %q: %w", mc.Config.RefsDir(), err)
	}

	branches := make([]Branch, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		d, err := mc.GetBranch(e.Name())
		if err != nil {
			return nil, err
		}
		branches = append(branches, Branch{Name: e.Name(), Digest: d})
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}
