package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"cloudplaza/internal/site"
)

func newExportCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the deck as a static HTML page",
		Long: `Write the deck as a single self-contained HTML page.

Examples:
  cloudplaza export
  cloudplaza export -o public/index.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := setup(ctx, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			path := a.cfg.Export.Output
			if output != "" {
				path = output
			}
			ctx, span := a.tracer.Start(ctx, "export", attribute.String("cloudplaza.export.path", path))
			defer span.End()

			if err := site.Export(ctx, path, a.deck); err != nil {
				span.RecordError(err)
				a.logger.Error("export failed", "path", path, "err", err)
				return fmt.Errorf("export %s: %w", path, err)
			}
			a.logger.Info("exported", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default from config: index.html)")
	return cmd
}
