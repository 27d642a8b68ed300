package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fashflow/landing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, siteConfig())
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.String("addr", "", "listen address (default \":3000\")")
	flags.Duration("page-cache-ttl", 0, "how long rendered pages are cached (default 10m)")
	flags.Int("rate-limit", 0, "requests per window per IP, negative disables (default 120)")
	flags.Duration("rate-window", 0, "rate limit window (default 1m)")
	flags.Bool("watch", false, "rebuild the asset manifest when the static dir changes")
	flags.Bool("pprof", false, "mount pprof handlers under /debug/pprof")
	for _, name := range []string{"addr", "page-cache-ttl", "rate-limit", "rate-window", "watch", "pprof"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func serve(ctx context.Context, cfg landing.SiteConfig) error {
	app := landing.New(cfg)
	defer app.Close()
	return app.Start(ctx)
}
