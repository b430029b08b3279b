package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"job-dash/internal/app"
	"job-dash/internal/dispatch"
	"job-dash/internal/domain"
	"job-dash/internal/render"
)

func newVisualizeCmd(opts *options) *cobra.Command {
	var (
		chartID string
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "List chart data or export one chart",
		Long: "Without --chart, print the aggregates behind every chart. " +
			"With --chart, draw that chart as PNG or SVG.",
		Example: "  jobdash visualize\n  jobdash visualize --chart top-salaries --format svg --out salaries.svg",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := render.Format(format)
			if f != render.FormatPNG && f != render.FormatSVG {
				return fmt.Errorf("unsupported chart format %q: use 'png' or 'svg'", format)
			}

			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				view, err := renderView(ctx, a, dispatch.ModeVisualizations, domain.SearchQuery{})
				if err != nil {
					return err
				}
				v := view.Visualizations

				if chartID != "" {
					return exportChart(cmd, v, chartID, f, outPath)
				}
				if getOutputFormat(cmd) == outputJSON {
					return PrintJSON(cmd.OutOrStdout(), v)
				}
				printCatalog(cmd, v)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&chartID, "chart", "", "Chart ID to draw (see the CHART column)")
	cmd.Flags().StringVar(&format, "format", string(render.FormatPNG), "Chart image format (png, svg)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file for the chart (default <chart>.<format>; - for stdout)")
	return cmd
}

func exportChart(cmd *cobra.Command, v *domain.Visualizations, id string, f render.Format, outPath string) error {
	c, err := render.Find(v, id)
	if err != nil {
		return err
	}
	if outPath == "-" {
		return render.Draw(cmd.OutOrStdout(), c, f)
	}
	if outPath == "" {
		outPath = id + "." + string(f)
	}

	data, err := render.Bytes(c, f)
	if err != nil {
		return fmt.Errorf("draw chart %s: %w", id, err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil { //nolint:gosec // chart images are not secret
		return fmt.Errorf("write chart: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
	return nil
}

func printCatalog(cmd *cobra.Command, v *domain.Visualizations) {
	out := cmd.OutOrStdout()
	charts := render.Catalog(v)
	rows := make([][]string, 0, len(charts))
	for _, c := range charts {
		top := "-"
		if len(c.Values) > 0 {
			top = c.Values[0].Label + " (" + strconv.Itoa(c.Values[0].Count) + ")"
		}
		rows = append(rows, []string{c.ID, string(c.Kind), c.Title, strconv.Itoa(len(c.Values)), top})
	}
	PrintTable(out, []string{"CHART", "KIND", "TITLE", "VALUES", "TOP"}, rows)

	if len(v.SkillWords) == 0 {
		return
	}
	_, _ = fmt.Fprintln(out, "\nKey skills:")
	words := make([][]string, 0, len(v.SkillWords))
	for _, w := range v.SkillWords[:min(len(v.SkillWords), 20)] {
		words = append(words, []string{w.Label, strconv.Itoa(w.Count)})
	}
	PrintTable(out, []string{"WORD", "COUNT"}, words)
}
