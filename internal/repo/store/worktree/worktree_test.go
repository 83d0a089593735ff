package worktree_test

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/digest"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/index"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/store/object"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/store/worktree"
)

func newTestTree(t *testing.T) (string, *digest.Hasher) {
	t.Helper()
	h, err := digest.New(digest.FormatSHA256)
	if err != nil {
		t.Fatal(err)
	}
	return t.TempDir(), h
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func emptyIndex(t *testing.T) *index.Index {
	t.Helper()
	ix, err := index.Load(filepath.Join(t.TempDir(), "index"))
	if err != nil {
		t.Fatal(err)
	}
	return ix
}

func TestScanSkipsMetadataDirs(t *testing.T) {
	root, h := newTestTree(t)
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "sub/b.txt", "b")
	writeFile(t, root, ".minigit/objects/xyz", "object")
	writeFile(t, root, ".git/config", "cfg")
	writeFile(t, root, ".gitignore", ".minigit/\n")

	w, err := worktree.Scan(root, h)
	if err != nil {
		t.Fatal(err)
	}

	got := make([]string, 0, len(w))
	for p := range w {
		got = append(got, p)
	}
	sort.Strings(got)
	want := []string{"a.txt", "sub/b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan paths = %v, want %v", got, want)
	}

	if w["a.txt"] != h.Sum([]byte("a")) {
		t.Errorf("digest mismatch for a.txt")
	}
}

func TestScanEmptyTree(t *testing.T) {
	root, h := newTestTree(t)
	w, err := worktree.Scan(root, h)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 0 {
		t.Errorf("expected empty scan, got %v", w)
	}
}

func TestClassifyBuckets(t *testing.T) {
	ix := emptyIndex(t)
	ix.Stage("staged-new.txt", "n1")
	ix.Stage("staged-mod.txt", "m2")
	ix.MarkRemoved("staged-del.txt")

	h := map[string]string{
		"staged-mod.txt":   "m1",
		"staged-del.txt":   "d1",
		"unstaged-mod.txt": "u1",
		"unstaged-del.txt": "x1",
		"clean.txt":        "c1",
	}
	w := map[string]string{
		"staged-new.txt":   "n1",
		"staged-mod.txt":   "m2",
		"staged-del.txt":   "d1",
		"unstaged-mod.txt": "u2",
		"clean.txt":        "c1",
		"untracked.txt":    "t1",
	}

	st := worktree.Classify(w, h, ix)

	check := func(name string, got, want []string) {
		t.Helper()
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	check("StagedNew", st.StagedNew, []string{"staged-new.txt"})
	check("StagedModified", st.StagedModified, []string{"staged-mod.txt"})
	check("StagedDeleted", st.StagedDeleted, []string{"staged-del.txt"})
	check("UnstagedModified", st.UnstagedModified, []string{"unstaged-mod.txt"})
	check("UnstagedDeleted", st.UnstagedDeleted, []string{"unstaged-del.txt"})
	check("Untracked", st.Untracked, []string{"untracked.txt"})
	check("Clean", st.Clean, []string{"clean.txt"})

	if !st.HasUnstagedChanges() {
		t.Error("HasUnstagedChanges = false with unstaged work present")
	}
}

func TestClassifyIndexStale(t *testing.T) {
	ix := emptyIndex(t)
	ix.Stage("stale.txt", "h1") // staged content equals HEAD

	h := map[string]string{"stale.txt": "h1"}
	w := map[string]string{"stale.txt": "w2"} // drifted after staging

	st := worktree.Classify(w, h, ix)
	if !reflect.DeepEqual(st.IndexStale, []string{"stale.txt"}) {
		t.Errorf("IndexStale = %v", st.IndexStale)
	}
	if !st.HasUnstagedChanges() {
		t.Error("stale index entry did not trip the safety predicate")
	}
}

func TestClassifyCleanTree(t *testing.T) {
	ix := emptyIndex(t)
	h := map[string]string{"a.txt": "1"}
	w := map[string]string{"a.txt": "1"}

	st := worktree.Classify(w, h, ix)
	if st.HasUnstagedChanges() {
		t.Error("clean tree tripped the safety predicate")
	}
	if !reflect.DeepEqual(st.Clean, []string{"a.txt"}) {
		t.Errorf("Clean = %v", st.Clean)
	}
}

func TestResetKeepsMetadata(t *testing.T) {
	root, _ := newTestTree(t)
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "sub/b.txt", "b")
	writeFile(t, root, ".minigit/HEAD", "ref: refs/heads/master")
	writeFile(t, root, ".git/config", "cfg")

	if err := worktree.Reset(root); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if !reflect.DeepEqual(names, []string{".git", ".minigit"}) {
		t.Errorf("after Reset: %v", names)
	}
}

func TestMaterialize(t *testing.T) {
	root, h := newTestTree(t)
	objects := object.New(filepath.Join(root, ".minigit", "objects"), h)

	d1, err := objects.Put([]byte("hello\n"))
	if err != nil {
		t.Fatal(err)
	}
	d2, err := objects.Put([]byte("world\n"))
	if err != nil {
		t.Fatal(err)
	}

	snapshot := map[string]string{
		"a.txt":     d1,
		"sub/b.txt": d2,
	}
	if err := worktree.Materialize(root, snapshot, objects, "test"); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(root, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello\n" {
		t.Errorf("a.txt = %q", got)
	}
	got, err = os.ReadFile(filepath.Join(root, "sub", "b.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "world\n" {
		t.Errorf("sub/b.txt = %q", got)
	}
}

func TestMaterializeMissingBlob(t *testing.T) {
	root, h := newTestTree(t)
	objects := object.New(filepath.Join(root, ".minigit", "objects"), h)

	err := worktree.Materialize(root, map[string]string{"a.txt": "missing"}, objects, "test")
	if err == nil {
		t.Error("expected error for dangling blob reference")
	}
}
