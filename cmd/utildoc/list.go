package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-utilkit/internal/catalog"
)

type listOptions struct {
	search     string
	category   string
	tags       []string
	sort       string
	desc       bool
	deprecated bool
	json       bool
}

func newListCmd(a *app) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List and search catalog entries",
		Example: `  utildoc list --category strs
  utildoc list --search debounce
  utildoc list --tag slice --tag set --sort since --desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			sortName := a.cfg.List.Sort
			if cmd.Flags().Changed("sort") {
				sortName = opts.sort
			}
			key, err := catalog.ParseSortKey(sortName)
			if err != nil {
				return err
			}
			desc := a.cfg.List.Desc
			if cmd.Flags().Changed("desc") {
				desc = opts.desc
			}

			q := catalog.Query{
				Search:            opts.search,
				Category:          opts.category,
				Tags:              opts.tags,
				IncludeDeprecated: opts.deprecated,
				Sort:              key,
				Desc:              desc,
			}
			entries := c.Filter(q)
			a.log.Debug("list filtered",
				zap.String("search", q.Search),
				zap.String("category", q.Category),
				zap.Strings("tags", q.Tags),
				zap.Int("matches", len(entries)),
			)

			out := cmd.OutOrStdout()
			if opts.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			a.styles.renderList(out, entries, len(c.Entries))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.search, "search", "s", "", "case-insensitive text search over name, signature, description and tags")
	f.StringVarP(&opts.category, "category", "c", "", `only this category ("all" for every category)`)
	f.StringSliceVarP(&opts.tags, "tag", "t", nil, "require tag (repeatable)")
	f.StringVar(&opts.sort, "sort", "name", "sort by name, category or since")
	f.BoolVar(&opts.desc, "desc", false, "reverse the sort order")
	f.BoolVar(&opts.deprecated, "deprecated", false, "include deprecated entries")
	f.BoolVar(&opts.json, "json", false, "print JSON instead of text")
	return cmd
}
