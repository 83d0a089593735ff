package checkout

import (
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Aliases() []string { return []string{"co"} }
func (c *Command) Usage() string     { return "checkout <branch-name> | <commit-digest>" }
func (c *Command) Brief() string     { return "Switch branches or restore the working tree" }
func (c *Command) Help() string {
	return `Replace the working tree with the target snapshot.

A ref resolves as a branch name first, then as a commit digest (checking
out a commit detaches HEAD). Unstaged changes block the switch.

Usage:
  checkout <ref>`
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) < 1 {
		return fmt.Errorf("ref required")
	}
	ref := ctx.Args[0]

	r, err := repo.Open()
	if err != nil {
		return err
	}

	res, err := r.Checkout(ref)
	if err != nil {
		return err
	}

	if res.Detached {
		fmt.Printf("Note: switching to '%s'.\n", meta.ShortDigest(res.Commit.Digest))
		fmt.Println("You are in 'detached HEAD' state.")
	} else {
		fmt.Printf("Switched to branch '%s'\n", res.Branch)
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
