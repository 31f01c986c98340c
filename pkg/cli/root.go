// Package cli implements the blockpharm command-line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"blockpharm/internal/config"
	"blockpharm/internal/listing"
	"blockpharm/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions carries the resolved global flags to subcommands.
type rootOptions struct {
	cardsFile string
	output    string
	title     string
	profile   string
}

func (o *rootOptions) provider() listing.Provider {
	return listing.NewProvider(o.cardsFile)
}

func (o *rootOptions) meta() ui.PageMeta {
	return ui.DefaultMeta(o.title)
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = printJSON(os.Stdout, map[string]interface{}{"error": err.Error()})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "blockpharm",
		Short:         "BlockPharm Mutual landing site tools",
		Long:          "Render the BlockPharm Mutual landing page and inspect its route cards without running the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional
				cfg = &UserConfig{Profiles: map[string]Profile{}}
			}
			p := cfg.ActiveProfile(opts.profile)

			// Precedence: flag > env > profile > default
			flags := cmd.Flags()
			resolve(flags, "cards-file", &opts.cardsFile, "BLOCKPHARM_CARDS_FILE", p.CardsFile)
			resolve(flags, "output", &opts.output, "BLOCKPHARM_OUTPUT", p.Output)
			resolve(flags, "title", &opts.title, "BLOCKPHARM_TITLE", p.Title)

			return validateOutputFormat(opts.output)
		},
	}

	addGlobalFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newCardsCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newCommandsCmd(opts))

	return rootCmd
}

func addGlobalFlags(fs *pflag.FlagSet, opts *rootOptions) {
	fs.StringVar(&opts.cardsFile, "cards-file", "", "YAML card file (default: built-in cards)")
	fs.StringVarP(&opts.output, "output", "o", "table", "Output format (table, json)")
	fs.StringVar(&opts.title, "title", config.DefaultSiteTitle, "Document title")
	fs.StringVarP(&opts.profile, "profile", "p", "", "Config profile to use")
}

// resolve fills target from env or the profile when the flag was not given.
func resolve(fs *pflag.FlagSet, name string, target *string, envKey, profileValue string) {
	if fs.Changed(name) {
		return
	}
	if v := os.Getenv(envKey); v != "" {
		*target = v
	} else if profileValue != "" {
		*target = profileValue
	}
}
