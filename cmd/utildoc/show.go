package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-utilkit/internal/catalog"
)

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one catalog entry in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			e, err := c.Lookup(args[0])
			if errors.Is(err, catalog.ErrEntryNotFound) {
				if hints := suggest(c.Entries, args[0]); len(hints) > 0 {
					return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hints, ", "))
				}
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(e)
			}
			a.styles.renderEntry(cmd.OutOrStdout(), e)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with their entry counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			cats := c.Categories()
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(cats)
			}
			a.styles.renderCategories(cmd.OutOrStdout(), cats)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}
