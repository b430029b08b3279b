package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"job-dash/internal/app"
)

func newServeCmd(opts *options) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				if listen != "" {
					a.Cfg.ListenAddr = listen
				}
				ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer cancel()
				return a.Serve(ctx)
			})
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides LISTEN_ADDR)")
	return cmd
}
