package cmds

import (
	"fmt"
	"os"
	"slices"
	"sort"
)

func (p *Executor) PrintUsage() {
	names := make([]string, 0, len(p.commands))
	for name, command := range p.commands {
		if slices.Contains(command.Aliases, name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(os.Stderr, "usage:")
	for _, name := range names {
		command := p.commands[name]
		line := "  " + name
		for _, alias := range command.Aliases {
			line += " | " + alias
		}
		if command.Description != "" {
			line += "\n    " + command.Description
		}
		fmt.Fprintln(os.Stderr, line)
	}
}
