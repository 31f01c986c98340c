package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// cardRow is the resolved view of one card, as printed by `cards`.
type cardRow struct {
	Position int    `json:"position"`
	Label    string `json:"label"`
	Status   string `json:"status"`
}

func newCardsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "List the route cards in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cards, err := opts.provider().Cards(cmd.Context())
			if err != nil {
				return fmt.Errorf("load cards: %w", err)
			}

			rows := make([]cardRow, 0, len(cards))
			for i, c := range cards {
				rows = append(rows, cardRow{Position: i + 1, Label: c.Title(), Status: c.Status().Label()})
			}

			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "#\tLABEL\tSTATUS")
			for _, r := range rows {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Position, r.Label, r.Status)
			}
			return tw.Flush()
		},
	}
}
