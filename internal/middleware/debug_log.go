package middleware

import (
	"log/slog"
	"os"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"
)

// WithDebugLog logs the resolved command and its args at debug level when
// MINIGIT_DEBUG is set.
func WithDebugLog() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if os.Getenv("MINIGIT_DEBUG") != "" {
					logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
						Level: slog.LevelDebug,
					}))
					logger.Debug("run command", "command", cmd.Name(), "args", ctx.Args)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
