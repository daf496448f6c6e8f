package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(p.usageOut)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	// aliases share one entry
	aliases := make(map[*Command][]string)
	for _, name := range names {
		cmd := commands[name]
		aliases[cmd] = append(aliases[cmd], name)
	}

	seen := make(map[*Command]bool)
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		cmd := commands[name]
		if cmd == nil || seen[cmd] {
			continue
		}
		seen[cmd] = true

		label := strings.Join(aliases[cmd], ", ")
		if cmd.Func.IsValid() {
			for i := range cmd.Func.Type().NumIn() {
				if i < len(cmd.ArgNames) {
					label += fmt.Sprintf(" <%s>", cmd.ArgNames[i])
				} else {
					label += fmt.Sprintf(" <%s>", cmd.Func.Type().In(i))
				}
			}
		}

		if cmd.Description != "" {
			fmt.Fprintf(w, "%s%-28s %s\n", indent, label, cmd.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, label)
		}
		if len(cmd.Subs) > 0 {
			writeCommands(w, cmd.Subs, depth+1)
		}
	}
}
