package cli

import (
	"github.com/spf13/cobra"

	"github.com/fieldgeneral/playcall/internal/api"
	"github.com/fieldgeneral/playcall/pkg/config"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the playcall HTTP API server",
		Long: `Serve the reference data and diagram endpoints over HTTP.

Configuration is read from a TOML file when --config is given; every
setting has a working default, so the server also starts bare.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			lib, err := loadLibrary(cfg.DataDir)
			if err != nil {
				return err
			}
			c.Logger.Info("loaded playbook",
				"formations", len(lib.Formations),
				"coverages", len(lib.Coverages),
				"blitzes", len(lib.Blitzes))

			diagramCache, err := newCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer diagramCache.Close()
			c.Logger.Debug("cache ready", "backend", cfg.CacheBackend)

			srv := api.NewServer(lib, diagramCache, cfg.TTL(), c.Logger)
			c.Logger.Info("listening", "addr", cfg.Addr)
			return srv.ListenAndServe(ctx, cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
