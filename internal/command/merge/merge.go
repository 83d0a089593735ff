package merge

import (
	"errors"
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "merge" }
func (c *Command) Aliases() []string { return []string{"mg"} }
func (c *Command) Usage() string     { return "merge <branch-name>" }
func (c *Command) Brief() string     { return "Merge another branch into the current branch" }
func (c *Command) Help() string {
	return `Join the named branch into the current branch: fast-forward when
possible, otherwise a three-way merge against the common ancestor.
Conflicting paths are written with conflict markers for manual
resolution.`
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) < 1 {
		return fmt.Errorf("branch name required")
	}
	branchName := ctx.Args[0]

	r, err := repo.Open()
	if err != nil {
		return err
	}

	res, err := r.Merge(branchName)
	if err != nil {
		var conflict *repo.MergeConflictError
		if errors.As(err, &conflict) {
			for _, p := range conflict.Paths {
				fmt.Printf("CONFLICT (content): Merge conflict in %s\n", p)
			}
		}
		return err
	}

	switch res.Outcome {
	case repo.MergeUpToDate:
		fmt.Println("Already up-to-date.")
	case repo.MergeFastForward:
		fmt.Printf("Fast-forward merge: updated to %s.\n", res.Commit.ShortDigest())
	case repo.MergeCommitted:
		fmt.Printf("Merge complete. Created merge commit %s\n", res.Commit.ShortDigest())
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
