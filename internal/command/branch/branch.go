package branch

import (
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "branch" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "branch <name> | branch -d <name>" }
func (c *Command) Brief() string     { return "Create or delete a branch" }
func (c *Command) Help() string {
	return `Create a new branch pointing at the current HEAD commit.

Usage:
  branch <name>      - create a branch at HEAD
  branch -d <name>   - delete a branch (the current branch is protected)`
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) >= 2 && ctx.Args[0] == "-d" {
		name := ctx.Args[1]
		r, err := repo.Open()
		if err != nil {
			return err
		}
		if err := r.DeleteBranch(name); err != nil {
			return err
		}
		fmt.Printf("Deleted branch '%s'.\n", name)
		return nil
	}

	if len(ctx.Args) < 1 {
		return fmt.Errorf("branch name required")
	}
	name := ctx.Args[0]

	r, err := repo.Open()
	if err != nil {
		return err
	}
	if err := r.CreateBranch(name); err != nil {
		return err
	}

	d, err := r.Meta.GetBranch(name)
	if err != nil {
		return err
	}
	fmt.Printf("Branch '%s' created pointing to %.7s\n", name, d)
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
