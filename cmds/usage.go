package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if command == nil || printed[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		printed[command] = true
		writeCommand(w, 0, name, command)
	}
}

func writeCommand(w io.Writer, depth int, name string, command *Command) {
	if command == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	names := append([]string{name}, command.Aliases...)
	fmt.Fprintf(w, "%s%s", indent, strings.Join(names, ", "))
	if command.Description != "" {
		fmt.Fprintf(w, "\t%s", command.Description)
	}
	fmt.Fprintln(w)
	for _, sub := range slices.Sorted(maps.Keys(command.Subs)) {
		writeCommand(w, depth+1, sub, command.Subs[sub])
	}
}
