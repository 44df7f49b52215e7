// Package cli implements the playcall command-line interface.
//
// The main commands are:
//   - serve: run the HTTP API server
//   - render: generate a play diagram as SVG, PNG, or PDF
//   - list: print the reference data as tables
//   - explore: browse defensive looks interactively
//   - matchups: render the concept-versus-coverage graph
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context so helpers can log progress.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fieldgeneral/playcall/pkg/buildinfo"
	"github.com/fieldgeneral/playcall/pkg/cache"
	"github.com/fieldgeneral/playcall/pkg/config"
	"github.com/fieldgeneral/playcall/pkg/playbook"
)

// appName is the application name used for directories and display.
const appName = "playcall"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Playcall analyzes defensive looks and draws play diagrams",
		Long:         `Playcall is a football play-calling reference: it catalogs defensive formations, coverages, and blitz packages, suggests the offensive concepts that beat each look, and renders play diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.matchupsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadLibrary loads the reference data, preferring dir when set.
func loadLibrary(dir string) (*playbook.Library, error) {
	if dir != "" {
		return playbook.Load(dir)
	}
	return playbook.Default()
}

// newCache builds the cache backend selected by the config.
func newCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	switch cfg.CacheBackend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	default:
		return cache.NewFileCache(cfg.CacheDir)
	}
}
