package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage() {
	w := tabwriter.NewWriter(p.output, 0, 4, 2, ' ', 0)
	printCommands(w, p.commands)
	w.Flush()
}

func printCommands(w io.Writer, commands map[string]*Command) {
	// aliases share the *Command, print each once under its sorted names
	names := make(map[*Command][]string)
	var order []*Command
	for name, cmd := range commands {
		if cmd == nil || cmd.Hidden {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}
	for _, cmd := range order {
		slices.Sort(names[cmd])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	for _, cmd := range order {
		fmt.Fprintf(w, "%s\t%s\n", strings.Join(names[cmd], ", "), cmd.Description)
	}
}
