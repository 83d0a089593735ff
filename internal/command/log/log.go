package log

import (
	"fmt"
	"strings"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/middleware"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

type Command struct{}

func (c *Command) Name() string      { return "log" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "log" }
func (c *Command) Brief() string     { return "Show commit history" }
func (c *Command) Help() string {
	return `Walk the first-parent chain from HEAD and print each commit's
headers, newest first.`
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := repo.Open()
	if err != nil {
		return err
	}

	commits, err := r.Log()
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		fmt.Println("No commits yet.")
		return nil
	}

	for _, cm := range commits {
		fmt.Printf("commit %s\n", cm.Digest)
		fmt.Printf("Author: %s\n", cm.Author)
		fmt.Printf("Date:   %s\n", cm.Timestamp)
		if cm.IsMerge() {
			short := make([]string, 0, len(cm.Parents))
			for _, p := range cm.Parents {
				short = append(short, meta.ShortDigest(p))
			}
			fmt.Printf("Merge:  %s\n", strings.Join(short, " "))
		}
		fmt.Printf("\n    %s\n\n", cm.Message)
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
