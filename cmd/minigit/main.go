package main

import (
	"os"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command"

	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/add"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/branch"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/branches"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/checkout"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/commit"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/help"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/initcmd"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/log"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/merge"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/rm"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/status"
	_ "github.com/MiniGit-AAiT/MiniGit-AAiT/internal/command/verifycmd"
)

func main() {
	command.RunCLI(os.Args[1:])
}
