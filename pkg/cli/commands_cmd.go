package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandEntry describes one jobdash command for introspection output.
type CommandEntry struct {
	Path    string      `json:"path"`
	Short   string      `json:"short"`
	Example string      `json:"example,omitempty"`
	Flags   []FlagEntry `json:"flags,omitempty"`
}

// FlagEntry describes one local flag of a command.
type FlagEntry struct {
	Name    string `json:"name"`
	Short   string `json:"shorthand,omitempty"`
	Type    string `json:"type"`
	Default string `json:"default,omitempty"`
	Usage   string `json:"usage,omitempty"`
}

func newCommandsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "commands",
		Short:   "List every command with its flags",
		Example: "  jobdash commands --filter search\n  jobdash commands -o json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := walkCommands(cmd.Root())
			if filter != "" {
				needle := strings.ToLower(filter)
				filtered := entries[:0]
				for _, e := range entries {
					if strings.Contains(strings.ToLower(e.Path+" "+e.Short), needle) {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			if getOutputFormat(cmd) == outputJSON {
				return PrintJSON(cmd.OutOrStdout(), entries)
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				names := make([]string, 0, len(e.Flags))
				for _, f := range e.Flags {
					names = append(names, "--"+f.Name)
				}
				rows = append(rows, []string{e.Path, e.Short, strings.Join(names, " ")})
			}
			PrintTable(cmd.OutOrStdout(), []string{"COMMAND", "DESCRIPTION", "FLAGS"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Substring match on command path and description")
	return cmd
}

func walkCommands(root *cobra.Command) []CommandEntry {
	var entries []CommandEntry
	for _, child := range root.Commands() {
		if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
			continue
		}
		entries = append(entries, CommandEntry{
			Path:    child.Name(),
			Short:   child.Short,
			Example: child.Example,
			Flags:   collectFlags(child),
		})
	}
	return entries
}

func collectFlags(cmd *cobra.Command) []FlagEntry {
	var flags []FlagEntry
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		flags = append(flags, FlagEntry{
			Name:    f.Name,
			Short:   f.Shorthand,
			Type:    f.Value.Type(),
			Default: f.DefValue,
			Usage:   f.Usage,
		})
	})
	return flags
}
