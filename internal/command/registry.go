package command

import "sort"

var registry = map[string]Command{}

// RegisterCommand adds a command and its aliases to the global registry.
func RegisterCommand(cmd Command) {
	names := append([]string{cmd.Name()}, cmd.Aliases()...)
	for _, n := range names {
		registry[n] = cmd
	}
}

// GetCommand returns a command by name or alias.
func GetCommand(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// AllCommands returns all registered commands, sorted by name, each once.
func AllCommands() []Command {
	list := make([]Command, 0, len(registry))
	seen := map[Command]bool{}
	for _, cmd := range registry {
		if !seen[cmd] {
			list = append(list, cmd)
			seen[cmd] = true
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}
