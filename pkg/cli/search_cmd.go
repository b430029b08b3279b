package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"job-dash/internal/api"
	"job-dash/internal/app"
	"job-dash/internal/dispatch"
	"job-dash/internal/domain"
)

func newSearchCmd(opts *options) *cobra.Command {
	var (
		title      string
		location   string
		maxResults int
		pageToken  string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the processed listings by title and location",
		Long: "Search the processed listings. Both patterns are case-insensitive substrings; " +
			"a listing must match every pattern given. Without --title or --location nothing is searched.",
		Example: "  jobdash search --title engineer --location pune",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var query domain.SearchQuery
			if cmd.Flags().Changed("title") {
				query.Title = &title
			}
			if cmd.Flags().Changed("location") {
				query.Location = &location
			}
			page := domain.PageRequest{MaxResults: maxResults, PageToken: pageToken}

			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				view, err := renderView(ctx, a, dispatch.ModeSearch, query)
				if err != nil {
					return err
				}
				if getOutputFormat(cmd) == outputJSON {
					return PrintJSON(cmd.OutOrStdout(), api.NewSearchResult(view.Search, page))
				}
				printSearch(cmd, view.Search, page)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Job title pattern")
	cmd.Flags().StringVar(&location, "location", "", "Location pattern")
	cmd.Flags().IntVar(&maxResults, "max-results", domain.DefaultMaxResults, "Rows per page")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token from a previous search")
	return cmd
}

func printSearch(cmd *cobra.Command, v *dispatch.SearchView, page domain.PageRequest) {
	if !v.Requested {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "no search criteria entered")
		return
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, v.Message())
	total := v.Result.Count()
	if total == 0 {
		return
	}

	start, end := page.Bounds(total)
	columns := append([]string{"#"}, v.Result.Rows.Columns()...)
	PrintTable(out, columns, tableRows(v.Result.Rows, start, end, v.Result.Positions))
	if next := domain.NextPageToken(start, page.Limit(), total); next != "" {
		_, _ = fmt.Fprintf(out, "\nShowing %d-%d of %d. Next page: --page-token %s\n", start+1, end, total, next)
	}
}
