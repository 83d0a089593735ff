package branches

import (
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

type Command struct{}

func (c *Command) Name() string      { return "ls-branches" }
func (c *Command) Aliases() []string { return []string{"branches"} }
func (c *Command) Usage() string     { return "ls-branches" }
func (c *Command) Brief() string     { return "List branches, marking the active one" }
func (c *Command) Help() string {
	return `List all branches sorted by name. The branch HEAD is attached to is
marked with '*'; a detached HEAD is reported separately.`
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

	list, err := r.Branches()
	if err != nil {
		return err
	}

	fmt.Println("Branches:")
	for _, b := range list {
		marker := "  "
		if !head.Detached && head.Branch == b.Name {
			marker = "* "
		}
		if b.Digest == "" {
			fmt.Printf("%s%s (unborn)\n", marker, b.Name)
			continue
		}
		fmt.Printf("%s%s (%s)\n", marker, b.Name, meta.ShortDigest(b.Digest))
	}
	if head.Detached {
		fmt.Printf("* (HEAD detached at %s)\n", meta.ShortDigest(head.Digest))
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
