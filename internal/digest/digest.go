package digest

import (
	"crypto/sha256"
	"fmt"

	"github.com/zeebo/xxh3"
	"lukechampine.com/blake3"
)

// Object formats accepted by `init --object-format`.
const (
	FormatSHA256 = "sha256"
	FormatBlake3 = "blake3"
	FormatXXH3   = "xxh3-128"

	DefaultFormat = FormatSHA256
)

// Hasher computes content digests in one configured format. Digests are
// rendered as lowercase hex, uniformly for blobs and commits.
type Hasher struct {
	format string
	sum    func(data []byte) string
}

// New returns a Hasher for the given format name.
func New(format string) (*Hasher, error) {
	if format == "" {
		format = DefaultFormat
	}
	sum, ok := sums[format]
	if !ok {
		return nil, fmt.Errorf("unknown object format %q", format)
	}
	return &Hasher{format: format, sum: sum}, nil
}

// Valid reports whether format names a known object format.
func Valid(format string) bool {
	_, ok := sums[format]
	return ok
}

func (h *Hasher) Format() string { return h.format }

// Sum returns the digest of data.
func (h *Hasher) Sum(data []byte) string { return h.sum(data) }

var sums = map[string]func([]byte) string{
	FormatSHA256: func(data []byte) string {
		sum := sha256.Sum256(data)
		return fmt.Sprintf("%x", sum[:])
	},
	FormatBlake3: func(data []byte) string {
		sum := blake3.Sum256(data)
		return fmt.Sprintf("%x", sum[:])
	},
	FormatXXH3: func(data []byte) string {
		sum := xxh3.Hash128(data).Bytes()
		return fmt.Sprintf("%x", sum[:])
	},
}
