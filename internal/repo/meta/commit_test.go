package meta_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

func TestCommitSerializeFormat(t *testing.T) {
	c := &meta.Commit{
		Message:   "first",
		Author:    "Anonymous",
		Timestamp: "2026-08-05 10:00:00",
		Parents:   []string{"aaa", "bbb"},
		Snapshot:  map[string]string{"b.txt": "222", "a.txt": "111"},
	}

	want := "first\nAnonymous\n2026-08-05 10:00:00\naaa bbb\na.txt 111\nb.txt 222\n"
	if got := string(c.Serialize()); got != want {
		t.Errorf("Serialize:\n got %q\nwant %q", got, want)
	}
}

func TestCommitSerializeNoParents(t *testing.T) {
	c := &meta.Commit{
		Message:   "root",
		Author:    "a",
		Timestamp: "2026-08-05 10:00:00",
		Snapshot:  map[string]string{},
	}
	want := "root\na\n2026-08-05 10:00:00\n\n"
	if got := string(c.Serialize()); got != want {
		t.Errorf("Serialize:\n got %q\nwant %q", got, want)
	}
}

func TestCommitRoundTrip(t *testing.T) {
	c := &meta.Commit{
		Message:   "change things",
		Author:    "Someone",
		Timestamp: "2026-01-02 03:04:05",
		Parents:   []string{"p1", "p2"},
		Snapshot: map[string]string{
			"dir/file.txt":         "abc123",
			"name with spaces.txt": "def456",
		},
	}

	parsed, err := meta.ParseCommit(c.Serialize())
	if err != nil {
		t.Fatalf("ParseCommit: %v", err)
	}

	if parsed.Message != c.Message || parsed.Author != c.Author || parsed.Timestamp != c.Timestamp {
		t.Errorf("headers differ: %+v vs %+v", parsed, c)
	}
	if !reflect.DeepEqual(parsed.Parents, c.Parents) {
		t.Errorf("parents = %v, want %v", parsed.Parents, c.Parents)
	}
	if !reflect.DeepEqual(parsed.Snapshot, c.Snapshot) {
		t.Errorf("snapshot = %v, want %v", parsed.Snapshot, c.Snapshot)
	}

	// reserializing the parsed commit yields identical bytes
	if !bytes.Equal(parsed.Serialize(), c.Serialize()) {
		t.Error("serialize-parse-serialize is not byte-stable")
	}
}

func TestParseCommitRootNoParents(t *testing.T) {
	body := "first\nAnonymous\n2026-08-05 10:00:00\n\na.txt 111\n"
	c, err := meta.ParseCommit([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Parents) != 0 {
		t.Errorf("parents = %v, want none", c.Parents)
	}
	if c.Snapshot["a.txt"] != "111" {
		t.Errorf("snapshot = %v", c.Snapshot)
	}
}

func TestParseCommitTooShort(t *testing.T) {
	if _, err := meta.ParseCommit([]byte("just a blob")); err == nil {
		t.Error("expected parse error for non-commit bytes")
	}
}

func TestParseCommitMalformedSnapshotLine(t *testing.T) {
	body := "m\na\nt\n\nnospacehere\n"
	if _, err := meta.ParseCommit([]byte(body)); err == nil {
		t.Error("expected parse error for malformed snapshot line")
	}
}

func TestIsMerge(t *testing.T) {
	if (&meta.Commit{Parents: []string{"a"}}).IsMerge() {
		t.Error("single parent reported as merge")
	}
	if !(&meta.Commit{Parents: []string{"a", "b"}}).IsMerge() {
		t.Error("two parents not reported as merge")
	}
}
