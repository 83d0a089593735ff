package initcmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/config"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "init" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "init [--object-format=<algo>]" }
func (c *Command) Brief() string     { return "Initialize a new repository" }
func (c *Command) Help() string {
	return `Initialize a new repository in the current directory.

Options:
  --object-format=<algo>  Digest algorithm: sha256, blake3, or xxh3-128
                          (default sha256).

Creates the .minigit layout, a .gitignore excluding it, and attaches HEAD
to the unborn master branch.`
}

func (c *Command) Run(ctx *command.Context) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	objectFmt := fs.String("object-format", config.DefaultObjectFormat, "")
	if err := fs.Parse(ctx.Args); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	r, created, err := repo.InitAt(cwd, *objectFmt)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			fmt.Printf("MiniGit repository already initialized in %s\n", r.Config.RepoRoot())
			return nil
		}
		return err
	}

	if created {
		fmt.Printf("Initialized empty MiniGit repository in %s\n", r.Config.RepoRoot())
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugLog(),
		),
	)
}
