package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"blockpharm/internal/domain"
	"blockpharm/internal/ui"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the landing page as static HTML",
		Long:  "Render the landing page with the configured card source and write the HTML document to stdout or --out.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cards, err := opts.provider().Cards(cmd.Context())
			if err != nil {
				return fmt.Errorf("load cards: %w", err)
			}

			if out == "" || out == "-" {
				return writeLanding(cmd.OutOrStdout(), opts, cards)
			}

			f, err := os.Create(out) //nolint:gosec // user-chosen output path
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := writeLanding(f, opts, cards); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")
	return cmd
}

func writeLanding(w io.Writer, opts *rootOptions, cards []domain.CardDisplayInput) error {
	bw := bufio.NewWriter(w)
	if err := ui.RenderLanding(bw, opts.meta(), cards); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
