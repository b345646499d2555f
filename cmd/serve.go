package cmd

import (
	"os"
	"os/signal"
	"syscall"

	proxyadapter "github.com/bnema/bibbox-fbs/internal/adapters/proxy"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bus to the kiosk UI over a websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			return withApp(cmd, opts, func(app *app) error {
				addr := listen
				if addr == "" {
					addr = app.cfg.ProxyListen
				}

				server := proxyadapter.NewServer(app.bus, app.metrics.Registry(), app.logger,
					proxyadapter.WithAllowedOrigins(app.cfg.ProxyOrigins...),
				)
				return server.ListenAndServe(ctx, addr)
			})
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default proxy.listen)")

	return cmd
}
