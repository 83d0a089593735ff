package middleware

import (
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/config"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
)

// WithRepoCheck fails the command early when no repository exists at or
// above the current directory.
func WithRepoCheck() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if config.ResolveWorkingTreeRoot() == "" {
					return repo.ErrNotARepository
				}
				return cmd.Run(ctx)
			},
		}
	}
}
