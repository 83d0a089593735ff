package verifycmd

import (
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/verify"
)

type Command struct{}

func (c *Command) Name() string      { return "verify" }
func (c *Command) Aliases() []string { return []string{"fsck"} }
func (c *Command) Usage() string     { return "verify" }
func (c *Command) Brief() string     { return "Check repository integrity" }
func (c *Command) Help() string {
	return `Walk every commit reachable from the branch tips and HEAD, parse
each one, and check that every referenced blob is present in the object
store.`
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := repo.Open()
	if err != nil {
		return err
	}

	rep, err := verify.Scan(r)
	if err != nil {
		return err
	}

	fmt.Printf("Checked %d commits, %d blobs.\n", rep.Commits, rep.Blobs)
	if rep.OK() {
		fmt.Println("Repository is healthy.")
		return nil
	}

	for _, d := range rep.CorruptCommits {
		fmt.Printf("corrupt commit: %s\n", d)
	}
	for _, d := range rep.MissingBlobs {
		fmt.Printf("missing blob:   %s\n", d)
	}
	return fmt.Errorf("repository verification failed")
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
