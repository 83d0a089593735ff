package rm

import (
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "rm" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "rm <path>..." }
func (c *Command) Brief() string     { return "Mark files for removal in the next commit" }
func (c *Command) Help() string {
	return `Unstage the given paths and mark them for deletion in the next
commit. The working copy is not touched.

Usage:
  rm <path>...`
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) < 1 {
		return fmt.Errorf("nothing specified, nothing removed")
	}

	r, err := repo.Open()
	if err != nil {
		return err
	}

	for _, p := range ctx.Args {
		if err := r.Remove(p); err != nil {
			return err
		}
		fmt.Println("Removed", p)
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
