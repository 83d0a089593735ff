package meta_test

import (
	"errors"
	"os"
	"testing"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/config"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

func newTestMeta(t *testing.T) *meta.MetaContext {
	t.Helper()
	cfg := config.NewRepoConfig(t.TempDir())
	if err := meta.CreateStructure(cfg); err != nil {
		t.Fatalf("CreateStructure: %v", err)
	}
	mc, err := meta.NewMeta(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return mc
}

func TestCreateStructure(t *testing.T) {
	mc := newTestMeta(t)

	headData, err := os.ReadFile(mc.Config.HeadFile())
	if err != nil {
		t.Fatalf("failed to read HEAD: %v", err)
	}
	if string(headData) != "ref: refs/heads/master" {
		t.Errorf("unexpected HEAD content: %s", headData)
	}

	d, err := mc.GetBranch(config.DefaultBranch)
	if err != nil {
		t.Fatalf("default branch: %v", err)
	}
	if d != "" {
		t.Errorf("default branch should be unborn, points to %q", d)
	}
}

func TestBranchNameValidation(t *testing.T) {
	for _, name := range []string{"", "has space", "has/slash", "tab\tname"} {
		if err := meta.ValidateBranchName(name); err == nil {
			t.Errorf("name %q accepted", name)
		}
	}
	if err := meta.ValidateBranchName("feature-1"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
}

func TestSetGetBranch(t *testing.T) {
	mc := newTestMeta(t)

	if err := mc.SetBranch("feature", "abc123"); err != nil {
		t.Fatal(err)
	}
	d, err := mc.GetBranch("feature")
	if err != nil {
		t.Fatal(err)
	}
	if d != "abc123" {
		t.Errorf("GetBranch = %q, want abc123", d)
	}

	if _, err := mc.GetBranch("nope"); !errors.Is(err, meta.ErrBranchNotFound) {
		t.Errorf("missing branch error = %v, want ErrBranchNotFound", err)
	}

	if err := mc.SetBranch("bad name", "abc"); err == nil {
		t.Error("SetBranch accepted invalid name")
	}
}

func TestListBranches(t *testing.T) {
	mc := newTestMeta(t)
	mc.SetBranch("zeta", "1")
	mc.SetBranch("alpha", "2")

	list, err := mc.ListBranches()
	if err != nil {
		t.Fatal(err)
	}
	// master (unborn) + alpha + zeta, sorted
	if len(list) != 3 {
		t.Fatalf("got %d branches, want 3", len(list))
	}
	if list[0].Name != "alpha" || list[1].Name != "master" || list[2].Name != "zeta" {
		t.Errorf("unexpected order: %v", list)
	}
}

func TestDeleteBranch(t *testing.T) {
	mc := newTestMeta(t)
	mc.SetBranch("feature", "abc")

	// HEAD is attached to master; deleting master must fail
	if err := mc.DeleteBranch(config.DefaultBranch); err == nil {
		t.Error("deleting the HEAD branch succeeded")
	}

	if err := mc.DeleteBranch("feature"); err != nil {
		t.Fatalf("DeleteBranch: %v", err)
	}
	if mc.BranchExists("feature") {
		t.Error("branch still exists after delete")
	}

	if err := mc.DeleteBranch("feature"); err == nil {
		t.Error("deleting a missing branch succeeded")
	}
}

func TestHeadAttachDetach(t *testing.T) {
	mc := newTestMeta(t)

	head, err := mc.ReadHead()
	if err != nil {
		t.Fatal(err)
	}
	if head.Detached || head.Branch != config.DefaultBranch {
		t.Errorf("fresh HEAD = %+v, want attached to master", head)
	}

	if err := mc.DetachHead("abc123"); err != nil {
		t.Fatal(err)
	}
	head, err = mc.ReadHead()
	if err != nil {
		t.Fatal(err)
	}
	if !head.Detached || head.Digest != "abc123" {
		t.Errorf("detached HEAD = %+v", head)
	}

	if err := mc.AttachHead("master"); err != nil {
		t.Fatal(err)
	}
	head, _ = mc.ReadHead()
	if head.Detached || head.Branch != "master" {
		t.Errorf("reattached HEAD = %+v", head)
	}
}

func TestResolveHead(t *testing.T) {
	mc := newTestMeta(t)

	// unborn branch resolves to ""
	d, err := mc.ResolveHead()
	if err != nil {
		t.Fatal(err)
	}
	if d != "" {
		t.Errorf("unborn HEAD resolved to %q", d)
	}

	mc.SetBranch("master", "abc")
	d, _ = mc.ResolveHead()
	if d != "abc" {
		t.Errorf("ResolveHead = %q, want abc", d)
	}

	mc.DetachHead("def")
	d, _ = mc.ResolveHead()
	if d != "def" {
		t.Errorf("detached ResolveHead = %q, want def", d)
	}
}
