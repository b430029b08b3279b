package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"job-dash/internal/api"
	"job-dash/internal/app"
	"job-dash/internal/dispatch"
	"job-dash/internal/domain"
)

// renderView runs one render cycle for mode.
func renderView(ctx context.Context, a *app.App, mode dispatch.Mode, query domain.SearchQuery) (*dispatch.View, error) {
	tables, err := a.Loader.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	return a.Dispatcher.Render(mode, tables, query)
}

func newOverviewCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Summarize the raw listings",
		Long:  "Print the shape, column info, duplicate rows, and missing-value percentages of the raw listings after identifier columns are pruned.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				view, err := renderView(ctx, a, dispatch.ModeOverview, domain.SearchQuery{})
				if err != nil {
					return err
				}
				s := view.Overview
				if getOutputFormat(cmd) == outputJSON {
					return PrintJSON(cmd.OutOrStdout(), api.NewOverview(s))
				}
				printOverview(cmd, s, limit)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum duplicate rows to print")
	return cmd
}

func printOverview(cmd *cobra.Command, s *domain.Summary, limit int) {
	out := cmd.OutOrStdout()
	for _, w := range s.Warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w.Error())
	}

	_, _ = fmt.Fprintf(out, "Shape: (%d, %d)\n\n", s.Rows, s.Columns)

	infoRows := make([][]string, 0, len(s.Info))
	for _, c := range s.Info {
		infoRows = append(infoRows, []string{strconv.Itoa(c.Position), c.Column, fmt.Sprintf("%d non-null", c.NonNull), string(c.Kind)})
	}
	PrintTable(out, []string{"#", "COLUMN", "NON-NULL COUNT", "DTYPE"}, infoRows)

	_, _ = fmt.Fprintf(out, "\nDuplicate rows: %d\n", tableLen(s.Duplicates))
	if n := min(tableLen(s.Duplicates), limit); n > 0 {
		PrintTable(out, s.Duplicates.Columns(), tableRows(s.Duplicates, 0, n, nil))
	}

	_, _ = fmt.Fprintln(out, "\nMissing values:")
	missingRows := make([][]string, 0, len(s.Missing))
	for _, m := range s.Missing {
		missingRows = append(missingRows, []string{m.Column, strconv.Itoa(m.Missing), m.PercentLabel()})
	}
	PrintTable(out, []string{"COLUMN", "MISSING", "PERCENT"}, missingRows)
}

func tableLen(t *domain.Table) int {
	if t == nil {
		return 0
	}
	return t.Len()
}

// tableRows formats rows [start, end) of t. When positions is set, each row
// is prefixed with its position in the searched table.
func tableRows(t *domain.Table, start, end int, positions []int) [][]string {
	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		var cells []string
		if positions != nil {
			cells = append(cells, strconv.Itoa(positions[i]))
		}
		for _, c := range t.Row(i) {
			if c.Valid {
				cells = append(cells, c.String)
			} else {
				cells = append(cells, "NaN")
			}
		}
		rows = append(rows, cells)
	}
	return rows
}
