package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-utilkit/internal/catalog"
)

var errNoWatchPath = errors.New("watch: no catalog file given and catalog.paths is empty")

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [FILE]",
		Short: "Reload a catalog file whenever it changes and report its contents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			switch {
			case len(args) == 1:
				path = args[0]
			case len(a.cfg.Catalog.Paths) > 0:
				path = a.cfg.Catalog.Paths[0]
			default:
				return errNoWatchPath
			}

			c, err := catalog.Load(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			report := func(c *catalog.Catalog) {
				fmt.Fprintln(out, a.styles.Muted.Render(fmt.Sprintf("%s: %d entries, %d constants",
					path, len(c.Entries), len(c.Constants))))
			}
			report(c)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("watching catalog", zap.String("path", path))
			return catalog.Watch(ctx, path, func(c *catalog.Catalog, err error) {
				if err != nil {
					a.log.Error("catalog reload failed", zap.String("path", path), zap.Error(err))
					return
				}
				a.log.Info("catalog reloaded", zap.String("path", path), zap.Int("entries", len(c.Entries)))
				report(c)
			})
		},
	}
}
