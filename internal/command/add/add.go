package add

import (
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "add <path>..." }
func (c *Command) Brief() string     { return "Add file contents to the staging area" }
func (c *Command) Help() string {
	return `Stage the current content of one or more files for the next commit.

Usage:
  add <path>...`
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) < 1 {
		return fmt.Errorf("nothing specified, nothing added")
	}

	r, err := repo.Open()
	if err != nil {
		return err
	}

	for _, p := range ctx.Args {
		if err := r.Add(p); err != nil {
			return err
		}
		fmt.Println("Added", p)
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
