package digest

import (
	"fmt"

	"golang.org/x/exp/mmap"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
)

// Files at or above this size are read through a memory map instead of
// os.ReadFile; the mapped content is still copied into one heap buffer
// before hashing.
const mmapThreshold = 8 * 1024 * 1024 // 8 MiB

// File returns the digest of the file's content.
func (h *Hasher) File(path string) (string, error) {
	fi, err := fsio.StatFile(path)
	if err != nil {
		return "", fmt.Errorf("stat %q: %w", path, err)
	}

	if fi.Size() < mmapThreshold {
		data, err := fsio.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %q: %w", path, err)
		}
		return h.Sum(data), nil
	}

	reader, err := mmap.Open(path)
	if err != nil {
		return "", fmt.Errorf("mmap %q: %w", path, err)
	}
	defer reader.Close()

	data := make([]byte, reader.Len())
	if _, err := reader.ReadAt(data, 0); err != nil {
		return "", fmt.Errorf("read mmap %q: %w", path, err)
	}
	return h.Sum(data), nil
}
