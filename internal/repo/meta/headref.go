package meta

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
)

const headRefPrefix = "ref: refs/heads/"

// Head is the current position: attached to a branch (possibly unborn) or
// detached at a commit digest.
type Head struct {
	Detached bool
	Branch   string // attached form
	Digest   string // detached form
}

// ReadHead parses the HEAD file. `ref: refs/heads/<name>` is an attached
// head; a bare digest is detached.
func (mc *MetaContext) ReadHead() (Head, error) {
	data, err := fsio.ReadFile(mc.Config.HeadFile())
	if err != nil {
		return Head{}, fmt.Errorf("failed to read HEAD %q: %w", mc.Config.HeadFile(), err)
	}

	content := strings.TrimSpace(string(data))
	if strings.HasPrefix(content, headRefPrefix) {
		name := strings.TrimPrefix(content, headRefPrefix)
		if name == "" {
			return Head{}, fmt.Errorf("invalid HEAD content: %q", content)
		}
		return Head{Branch: name}, nil
	}
	if content == "" {
		return Head{}, fmt.Errorf("invalid HEAD content: empty")
	}
	return Head{Detached: true, Digest: content}, nil
}

// AttachHead points HEAD at a branch symbolically.
func (mc *MetaContext) AttachHead(branch string) error {
	if err := ValidateBranchName(branch); err != nil {
		return err
	}
	content := headRefPrefix + branch
	if err := fsio.WriteFileAtomic(mc.Config.HeadFile(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write HEAD: %w", err)
	}
	return nil
}

// DetachHead points HEAD directly at a commit digest.
func (mc *MetaContext) DetachHead(commitDigest string) error {
	if commitDigest == "" {
		return fmt.Errorf("cannot detach HEAD at empty digest")
	}
	if err := fsio.WriteFileAtomic(mc.Config.HeadFile(), []byte(commitDigest), 0o644); err != nil {
		return fmt.Errorf("failed to write HEAD: %w", err)
	}
	return nil
}

// ResolveHead returns the commit digest HEAD ultimately points to. For an
// attached head the branch ref is followed; an unborn branch resolves to "".
func (mc *MetaContext) ResolveHead() (string, error) {
	head, err := mc.ReadHead()
	if err != nil {
		return "", err
	}
	if head.Detached {
		return head.Digest, nil
	}
	d, err := mc.GetBranch(head.Branch)
	if err != nil {
		if errors.Is(err, ErrBranchNotFound) {
			return "", nil // attached to a branch with no ref file yet
		}
		return "", err
	}
	return d, nil
}
