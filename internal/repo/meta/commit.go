package meta

import (
	"fmt"
	"sort"
	"strings"
)

// TimestampLayout is the commit timestamp format, rendered in local time.
const TimestampLayout = "2006-01-02 15:04:05"

// Commit is an immutable DAG node: headers, parentage, and a whole-project
// snapshot (working-tree-relative path -> blob digest). Digest is derived
// from the serialized body and set when the body is stored; a commit is
// never mutated after persistence.
type Commit struct {
	Digest    string
	Message   string
	Author    string
	Timestamp string
	Parents   []string
	Snapshot  map[string]string
}

// Serialize renders the commit body byte-exactly:
//
//	<message>\n
//	<author>\n
//	<timestamp>\n
//	<parent1> <parent2> ...\n   (empty line if no parents)
//	<path> <digest>\n           (one per snapshot entry, sorted by path)
//
// Sorting makes the body a deterministic function of the commit's fields,
// which the commit digest depends on.
func (c *Commit) Serialize() []byte {
	var sb strings.Builder
	sb.WriteString(c.Message)
	sb.WriteByte('\n')
	sb.WriteString(c.Author)
	sb.WriteByte('\n')
	sb.WriteString(c.Timestamp)
	sb.WriteByte('\n')
	sb.WriteString(strings.Join(c.Parents, " "))
	sb.WriteByte('\n')

	paths := make([]string, 0, len(c.Snapshot))
	for p := range c.Snapshot {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		sb.WriteString(p)
		sb.WriteByte(' ')
		sb.WriteString(c.Snapshot[p])
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// ParseCommit reads a serialized commit body. The digest field is left for
// the caller, which knows the object's store key. Snapshot lines split on
// the last space so paths may contain spaces; digests may not.
func ParseCommit(data []byte) (*Commit, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) < 4 {
		return nil, fmt.Errorf("commit body too short (%d lines)", len(lines))
	}

	c := &Commit{
		Message:   lines[0],
		Author:    lines[1],
		Timestamp: lines[2],
		Parents:   strings.Fields(lines[3]),
		Snapshot:  make(map[string]string),
	}

	for _, line := range lines[4:] {
		if line == "" {
			continue
		}
		sep := strings.LastIndex(line, " ")
		if sep <= 0 || sep == len(line)-1 {
			return nil, fmt.Errorf("malformed snapshot line %q", line)
		}
		c.Snapshot[line[:sep]] = line[sep+1:]
	}
	return c, nil
}

// IsMerge reports whether the commit has more than one parent.
func (c *Commit) IsMerge() bool { return len(c.Parents) > 1 }

// ShortDigest returns the abbreviated digest used in user-facing output.
func (c *Commit) ShortDigest() string { return ShortDigest(c.Digest) }

// ShortDigest abbreviates a digest to seven characters.
func ShortDigest(d string) string {
	if len(d) <= 7 {
		return d
	}
	return d[:7]
}
