package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandEntry represents a single CLI command for introspection output.
type CommandEntry struct {
	Path  string      `json:"path"`
	Short string      `json:"short"`
	Long  string      `json:"long,omitempty"`
	Flags []FlagEntry `json:"flags,omitempty"`
}

// FlagEntry represents a single CLI flag for introspection output.
type FlagEntry struct {
	Name    string `json:"name"`
	Short   string `json:"shorthand,omitempty"`
	Type    string `json:"type"`
	Default string `json:"default,omitempty"`
	Usage   string `json:"usage,omitempty"`
}

func newCommandsCmd(opts *rootOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List all available CLI commands with their flags",
		Example: `  blockpharm commands
  blockpharm commands --filter render -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := walkCommands(cmd.Root(), "")

			if filter != "" {
				needle := strings.ToLower(filter)
				filtered := entries[:0]
				for _, e := range entries {
					if strings.Contains(strings.ToLower(e.Path+" "+e.Short+" "+e.Long), needle) {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), entries)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "PATH\tDESCRIPTION")
			for _, e := range entries {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", e.Path, e.Short)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Substring search across command names and descriptions")
	return cmd
}

// walkCommands collects the leaf commands of the tree in registration order.
func walkCommands(cmd *cobra.Command, parentPath string) []CommandEntry {
	var entries []CommandEntry

	for _, child := range cmd.Commands() {
		if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
			continue
		}

		childPath := child.Name()
		if parentPath != "" {
			childPath = parentPath + " " + child.Name()
		}

		if child.HasSubCommands() {
			entries = append(entries, walkCommands(child, childPath)...)
			continue
		}

		entries = append(entries, CommandEntry{
			Path:  childPath,
			Short: child.Short,
			Long:  child.Long,
			Flags: collectFlags(child.LocalFlags()),
		})
	}

	return entries
}

func collectFlags(fs *pflag.FlagSet) []FlagEntry {
	var flags []FlagEntry
	fs.VisitAll(func(f *pflag.Flag) {
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
