package help

import (
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
)

type Command struct{}

func (c *Command) Name() string      { return "help" }
func (c *Command) Aliases() []string { return []string{"-h", "--help"} }
func (c *Command) Usage() string     { return "help [command]" }
func (c *Command) Brief() string     { return "Show help for a command" }
func (c *Command) Help() string {
	return `Show the command list, or detailed help for one command.

Usage:
  help
  help <command>`
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		command.PrintUsage()
		return nil
	}

	cmd, ok := command.GetCommand(ctx.Args[0])
	if !ok {
		return fmt.Errorf("unknown command %q", ctx.Args[0])
	}

	fmt.Printf("Usage: minigit %s\n\n%s\n", cmd.Usage(), cmd.Help())
	return nil
}

func init() {
	command.RegisterCommand(&Command{})
}
