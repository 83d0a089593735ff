package command

import (
	"fmt"
	"os"
)

// RunCLI is the main entrypoint for executing commands. It resolves the
// command by name, runs it, and maps any error to stderr plus exit code 1.
func RunCLI(args []string) {
	if len(args) == 0 {
		PrintUsage()
		os.Exit(0)
	}

	cmd, ok := GetCommand(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		PrintUsage()
		os.Exit(1)
	}

	ctx := &Context{Args: args[1:]}
	if err := cmd.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// PrintUsage lists every registered command with its brief.
func PrintUsage() {
	fmt.Println("Usage: minigit <command> [args...]")
	fmt.Println("Available commands:")
	for _, cmd := range AllCommands() {
		fmt.Printf("  %-12s %s\n", cmd.Name(), cmd.Brief())
	}
}
