package cmd

import (
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/zalepa/ourvoice/catalog"
	"github.com/zalepa/ourvoice/metrics"
	"github.com/zalepa/ourvoice/server"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, cat, err := opts.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			level := cfg.SlogLevel()
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: level,
			})))

			slog.Info("starting ourvoice",
				"version", version,
				"addr", cfg.Addr(),
				"regions", cat.Len(),
				"language", cfg.Language(),
			)

			gen := metrics.NewDefaultGenerator()
			loc := catalog.NewLocator(cat, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), cfg.Dashboard.LocateDelay)
			srv := server.New(cfg, cat, gen, loc)
			if err := srv.Run(cmd.Context()); err != nil {
				slog.Error("HTTP server error", "error", err)
				return err
			}
			slog.Info("ourvoice stopped")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port (overrides config)")
	return cmd
}
