package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-utilkit/internal/catalog"
	"github.com/hasbyte1/go-utilkit/internal/config"
	"github.com/hasbyte1/go-utilkit/internal/logging"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	noColor bool

	cfg    *config.Config
	log    *zap.Logger
	styles styles
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "utildoc",
		Short: "Browse the go-utilkit documentation catalog",
		Long: `utildoc reads the go-utilkit documentation catalog (embedded, or loaded
from YAML, TOML or JSON files) and renders it in the terminal.

Configuration is read from .utildoc.yaml, UTILDOC_* environment variables
and flags, in increasing order of precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default .utildoc.yaml in . or $HOME)")
	flags.StringSlice("catalog", nil, "catalog files to load instead of the embedded catalog")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable styled output")
	_ = a.v.BindPFlag("catalog.paths", flags.Lookup("catalog"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newCategoriesCmd(a),
		newGraphCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.log = logger
	a.styles = newStyles(cmd.OutOrStdout(), cfg.Output.Color)

	a.log.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.Strings("catalog", cfg.Catalog.Paths),
		zap.Bool("color", cfg.Output.Color),
	)
	return nil
}

// loadCatalog returns the configured catalog, or the embedded one when no
// paths are configured.
func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if len(a.cfg.Catalog.Paths) == 0 {
		a.log.Debug("using embedded catalog")
		return catalog.Default()
	}
	c, err := catalog.LoadAll(ctx, a.cfg.Catalog.Paths...)
	if err != nil {
		a.log.Error("catalog load failed", zap.Strings("paths", a.cfg.Catalog.Paths), zap.Error(err))
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	a.log.Info("catalog loaded",
		zap.Int("entries", len(c.Entries)),
		zap.Int("constants", len(c.Constants)),
	)
	return c, nil
}
