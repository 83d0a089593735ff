package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/config"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/digest"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/index"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/store/object"
)

// Repository is the facade every operation goes through. All state lives
// under <WorkRoot>/.minigit; the working tree is a derived view that can
// be discarded and regenerated from any commit's snapshot.
type Repository struct {
	Config   *config.RepoConfig
	Settings *config.Settings
	Meta     *meta.MetaContext
	Objects  *object.Store
	Hash     *digest.Hasher
}

// InitAt initializes a repository at the given working root.
// Returns (*Repository, created, error). An already-initialized root is
// reported with created=false and os.ErrExist.
func InitAt(workRoot, objectFormat string) (*Repository, bool, error) {
	cfg := config.NewRepoConfig(workRoot)

	if meta.Exists(cfg) {
		r, err := OpenAt(workRoot)
		if err != nil {
			return nil, false, err
		}
		return r, false, os.ErrExist
	}

	if objectFormat == "" {
		objectFormat = config.DefaultObjectFormat
	}
	if !digest.Valid(objectFormat) {
		return nil, false, fmt.Errorf("unknown object format %q", objectFormat)
	}

	if err := meta.CreateStructure(cfg); err != nil {
		return nil, false, err
	}

	settings := config.DefaultSettings()
	settings.ObjectFormat = objectFormat
	if err := config.SaveSettings(cfg.ConfigFile(), settings); err != nil {
		return nil, false, err
	}

	// Seed the ignore manifest so external git tooling skips the
	// metadata directory.
	ignorePath := filepath.Join(cfg.WorkRoot, config.IgnoreManifest)
	if !fsio.Exists(ignorePath) {
		if err := fsio.WriteFile(ignorePath, []byte(config.RepoDir+"/\n"), 0o644); err != nil {
			return nil, false, fmt.Errorf("failed to write %s: %w", config.IgnoreManifest, err)
		}
	}

	r, err := OpenAt(workRoot)
	if err != nil {
		return nil, false, err
	}
	return r, true, nil
}

// OpenAt opens an existing repository rooted at workRoot.
func OpenAt(workRoot string) (*Repository, error) {
	cfg := config.NewRepoConfig(workRoot)
	if !meta.Exists(cfg) {
		return nil, ErrNotARepository
	}

	settings, err := config.LoadSettings(cfg.ConfigFile())
	if err != nil {
		return nil, err
	}

	h, err := digest.New(settings.ObjectFormat)
	if err != nil {
		return nil, err
	}

	mc, err := meta.NewMeta(cfg)
	if err != nil {
		return nil, err
	}

	return &Repository{
		Config:   cfg,
		Settings: settings,
		Meta:     mc,
		Objects:  object.New(cfg.ObjectsDir(), h),
		Hash:     h,
	}, nil
}

// Open discovers the working tree root by walking up from the current
// directory and opens the repository found there.
func Open() (*Repository, error) {
	root := config.ResolveWorkingTreeRoot()
	if root == "" {
		return nil, ErrNotARepository
	}
	return OpenAt(root)
}

// LoadIndex reads the staging area.
func (r *Repository) LoadIndex() (*index.Index, error) {
	return index.Load(r.Config.IndexFile())
}
