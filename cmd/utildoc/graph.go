package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-utilkit/collections"
	"github.com/hasbyte1/go-utilkit/internal/catalog"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		group   string
		compact bool
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the constants graph as JSON nodes and links",
		Long: `Prints {"nodes": [...], "links": [...]} describing every documented
constant, its group and its related constants. The output is ready for
force-directed layout libraries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			constants := c.Constants
			if group != "" {
				constants = collections.Filter(constants, func(k catalog.Constant, _ int) bool {
					return k.Group == group
				})
			}
			g := catalog.Graph(constants)
			a.log.Debug("graph built", zap.Int("nodes", len(g.Nodes)), zap.Int("links", len(g.Links)))

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(g)
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "only constants of this group")
	cmd.Flags().BoolVar(&compact, "compact", false, "print compact JSON")
	return cmd
}
