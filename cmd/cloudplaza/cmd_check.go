package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cloudplaza/internal/deck"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the deck content",
		Long: `Validate the deck content: revenue rows ascend by year, are non-negative and
satisfy conservative <= base <= optimistic; every founder is named.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := setup(ctx, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			_, span := a.tracer.Start(ctx, "check")
			defer span.End()

			if err := a.deck.Validate(); err != nil {
				span.RecordError(err)
				return fmt.Errorf("check content: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d sections, %d revenue rows, %d founders\n",
				len(deck.Sections()), len(a.deck.Finance.Revenue), len(a.deck.Team.Founders))
			return nil
		},
	}
}
