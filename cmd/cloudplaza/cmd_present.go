package main

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cloudplaza/internal/deck"
	"cloudplaza/internal/telemetry"
	"cloudplaza/internal/ui"
)

func newPresentCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "present",
		Short: "Show the deck in the terminal (default)",
		Long: `Show the deck as one scrollable page under a navigation bar.

Keys: 1-6 jump to a section, tab/shift+tab cycle, SPC opens the command
leader, ? lists every binding, q quits. Clicking a nav item also navigates.
--section opens the page on a section; "#finance" and "finance" are the same.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresent(cmd, opts)
		},
	}
	addSectionFlag(cmd, opts)
	return cmd
}

func addSectionFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.section, "section", "", "Section to open on: "+sectionNames())
}

func sectionNames() string {
	ids := deck.Sections()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}

// startSection parses the --section value; empty means the top of the page.
func startSection(s string) (deck.SectionID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return "", nil
	}
	id, err := deck.ParseSection(s)
	if err != nil {
		return "", fmt.Errorf("--section: %w", err)
	}
	return id, nil
}

func runPresent(cmd *cobra.Command, opts *options) error {
	start, err := startSection(opts.section)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	// The program owns the terminal; only a log file sees the logger.
	a, err := setup(ctx, opts, io.Discard)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	ctx, span := a.tracer.Start(ctx, "present")
	defer span.End()

	page := ui.NewPageModel(a.deck)
	page.Logger = a.logger
	page.OnNavigate = telemetry.NavigationRecorder(span)
	if start != "" {
		page.StartAt(start)
	}

	var progOpts []tea.ProgramOption
	if a.cfg.Present.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if a.cfg.Present.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	progOpts = append(progOpts, tea.WithContext(ctx))

	a.logger.Info("presenting", "sections", len(page.Containers()))
	_, runErr := tea.NewProgram(page, progOpts...).Run()
	page.Unmount()
	if runErr != nil {
		span.RecordError(runErr)
		return fmt.Errorf("run presentation: %w", runErr)
	}
	a.logger.Info("presentation closed", "section", page.Active)
	return nil
}
