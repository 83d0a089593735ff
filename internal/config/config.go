package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
)

const DefaultObjectFormat = "sha256"

// Settings is the per-repository configuration stored at .minigit/config.yaml.
type Settings struct {
	ObjectFormat string `yaml:"object_format"`
	Author       string `yaml:"author"`
}

// DefaultSettings returns a Settings with every field at its default.
func DefaultSettings() *Settings {
	return &Settings{
		ObjectFormat: DefaultObjectFormat,
		Author:       DefaultAuthor,
	}
}

// LoadSettings reads the repository config file. A missing file yields
// defaults; missing keys fall back field by field.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := fsio.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if s.ObjectFormat == "" {
		s.ObjectFormat = DefaultObjectFormat
	}
	if s.Author == "" {
		s.Author = DefaultAuthor
	}
	return s, nil
}

// SaveSettings writes the repository config file.
func SaveSettings(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := fsio.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}

// ResolveWorkingTreeRoot walks up from the current directory until it finds
// a .minigit directory. Returns "" when none is found.
func ResolveWorkingTreeRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if fsio.IsDir(filepath.Join(cwd, RepoDir)) {
			return cwd
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			break // reached filesystem root
		}
		cwd = parent
	}
	return ""
}
