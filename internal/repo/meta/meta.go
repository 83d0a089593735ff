package meta

import (
	"fmt"
	"path/filepath"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/config"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
)

// MetaContext manages refs and HEAD for one repository.
type MetaContext struct {
	Config *config.RepoConfig
}

// NewMeta wraps an existing repository's metadata.
func NewMeta(cfg *config.RepoConfig) (*MetaContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	return &MetaContext{Config: cfg}, nil
}

// CreateStructure builds a fresh metadata layout: directories, an unborn
// default branch, and HEAD attached to it.
func CreateStructure(cfg *config.RepoConfig) error {
	dirs := []string{
		cfg.RepoRoot(),
		cfg.ObjectsDir(),
		cfg.RefsDir(),
	}
	for _, d := range dirs {
		if err := fsio.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create dir %q: %w", d, err)
		}
	}

	defaultBranch := filepath.Join(cfg.RefsDir(), config.DefaultBranch)
	if err := fsio.WriteFile(defaultBranch, []byte(""), 0o644); err != nil {
		return fmt.Errorf("failed to create default branch: %w", err)
	}

	if err := fsio.WriteFile(cfg.IndexFile(), []byte(""), 0o644); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	headContent := headRefPrefix + config.DefaultBranch
	if err := fsio.WriteFile(cfg.HeadFile(), []byte(headContent), 0o644); err != nil {
		return fmt.Errorf("failed to write HEAD: %w", err)
	}

	return nil
}

// Exists reports whether cfg points at an initialized repository.
func Exists(cfg *config.RepoConfig) bool {
	fi, err := fsio.StatFile(cfg.HeadFile())
	return err == nil && fi.Mode().IsRegular()
}
