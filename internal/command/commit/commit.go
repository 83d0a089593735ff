package commit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return `commit -m "<message>"` }
func (c *Command) Brief() string     { return "Record staged changes to the repository" }
func (c *Command) Help() string {
	return `Create a new commit with the staged changes.

Usage:
  commit -m "<message>"`
}

func (c *Command) Run(ctx *command.Context) error {
	var message string
	var haveMessage bool

	for i := 0; i < len(ctx.Args); i++ {
		arg := ctx.Args[i]
		switch {
		case arg == "-m" && i+1 < len(ctx.Args):
			message = ctx.Args[i+1]
			haveMessage = true
			i++
		case strings.HasPrefix(arg, "-m="):
			message = strings.TrimPrefix(arg, "-m=")
			haveMessage = true
		}
	}
	if !haveMessage {
		return fmt.Errorf(`commit message required: commit -m "<message>"`)
	}

	r, err := repo.Open()
	if err != nil {
		return err
	}

	newCommit, err := r.Commit(message)
	if err != nil {
		if errors.Is(err, repo.ErrNothingToCommit) {
			fmt.Println("Nothing to commit, working tree clean.")
			return nil
		}
		return err
	}

	head, err := r.Meta.ReadHead()
	if err != nil {
		return err
	}
	if head.Detached {
		fmt.Printf("[HEAD detached at %s] %s\n", newCommit.ShortDigest(), message)
	} else {
		fmt.Printf("[%s %s] %s\n", head.Branch, newCommit.ShortDigest(), message)
	}
	fmt.Printf("%d files committed.\n", len(newCommit.Snapshot))
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
