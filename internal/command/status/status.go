package status

import (
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

type Command struct{}

func (c *Command) Name() string      { return "status" }
func (c *Command) Aliases() []string { return []string{"st"} }
func (c *Command) Usage() string     { return "status" }
func (c *Command) Brief() string     { return "Show the working tree status" }
func (c *Command) Help() string {
	return `Classify every path against HEAD and the staging area and print the
result by bucket.`
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := repo.Open()
	if err != nil {
		return err
	}

	head, err := r.Meta.ReadHead()
	if err != nil {
		return err
	}
	if head.Detached {
		fmt.Printf("HEAD detached at %s\n", meta.ShortDigest(head.Digest))
	} else {
		fmt.Printf("On branch %s\n", head.Branch)
	}

	st, err := r.Status()
	if err != nil {
		return err
	}

	fmt.Println("\nChanges to be committed:")
	staged := false
	for _, p := range st.StagedNew {
		fmt.Printf("\tnew file: %s\n", p)
		staged = true
	}
	for _, p := range st.StagedModified {
		fmt.Printf("\tmodified: %s\n", p)
		staged = true
	}
	for _, p := range st.StagedDeleted {
		fmt.Printf("\tdeleted:  %s\n", p)
		staged = true
	}
	if !staged {
		fmt.Println("  (no changes staged for commit)")
	}

	fmt.Println("\nChanges not staged for commit:")
	unstaged := false
	for _, p := range st.UnstagedModified {
		fmt.Printf("\tmodified: %s\n", p)
		unstaged = true
	}
	for _, p := range st.IndexStale {
		fmt.Printf("\tmodified: %s\n", p)
		unstaged = true
	}
	for _, p := range st.UnstagedDeleted {
		fmt.Printf("\tdeleted:  %s\n", p)
		unstaged = true
	}
	if !unstaged {
		fmt.Println("  (no changes not staged for commit)")
	}

	fmt.Println("\nUntracked files:")
	if len(st.Untracked) == 0 {
		fmt.Println("  (none)")
	}
	for _, p := range st.Untracked {
		fmt.Printf("\t%s\n", p)
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugLog(),
			middleware.WithRepoCheck(),
		),
	)
}
