package verify_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/verify"
)

func setupRepo(t *testing.T) *repo.Repository {
	t.Helper()
	r, _, err := repo.InitAt(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(r.Config.WorkRoot, "a.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit("first"); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestScanHealthy(t *testing.T) {
	r := setupRepo(t)

	rep, err := verify.Scan(r)
	if err != nil {
		t.Fatal(err)
	}
	if !rep.OK() {
		t.Errorf("healthy repo reported damage: %+v", rep)
	}
	if rep.Commits != 1 || rep.Blobs != 1 {
		t.Errorf("counts = %d commits, %d blobs; want 1, 1", rep.Commits, rep.Blobs)
	}
}

func TestScanMissingBlob(t *testing.T) {
	r := setupRepo(t)

	blob := r.Hash.Sum([]byte("hello\n"))
	if err := os.Remove(filepath.Join(r.Config.ObjectsDir(), blob)); err != nil {
		t.Fatal(err)
	}

	rep, err := verify.Scan(r)
	if err != nil {
		t.Fatal(err)
	}
	if rep.OK() {
		t.Error("missing blob not reported")
	}
	if len(rep.MissingBlobs) != 1 || rep.MissingBlobs[0] != blob {
		t.Errorf("MissingBlobs = %v, want [%s]", rep.MissingBlobs, blob)
	}
}

func TestScanCorruptCommit(t *testing.T) {
	r := setupRepo(t)

	tip, err := r.Meta.GetBranch("master")
	if err != nil {
		t.Fatal(err)
	}
	// truncate the commit body so it no longer parses
	if err := os.WriteFile(filepath.Join(r.Config.ObjectsDir(), tip), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	rep, err := verify.Scan(r)
	if err != nil {
		t.Fatal(err)
	}
	if rep.OK() {
		t.Error("corrupt commit not reported")
	}
	if len(rep.CorruptCommits) != 1 || rep.CorruptCommits[0] != tip {
		t.Errorf("CorruptCommits = %v, want [%s]", rep.CorruptCommits, tip)
	}
}
