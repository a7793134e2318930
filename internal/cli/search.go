package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmehra/tracklet/internal/search"
)

// NewSearchCommand creates the search subcommand.
//
// By default the query runs through the filter-directed strategy split
// (structured predicate when any status:/type:/priority:/is: directive
// is present, substring scan otherwise). --match routes it through the
// boolean grammar and the full-text index instead.
func NewSearchCommand(opts *RootOptions) *cobra.Command {
	var (
		limit    int
		offset   int
		useMatch bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search items",
		Long: `Search items with the structured query language.

Examples:
  tracklet search 'login bug'
  tracklet search 'status:Open type:bug crash'
  tracklet search 'is:closed priority:high'
  tracklet search --match '(bug OR crash) AND title:login'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, cfg, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if limit == 0 {
				limit = cfg.DefaultLimit
			}
			engine := search.New(st, slog.Default())
			page := search.Page{Limit: limit, Offset: offset}

			run := engine.Search
			if useMatch {
				run = engine.Match
			}
			items, err := run(ctx, args[0], page)
			if err != nil {
				return WrapExitError(ExitCommandError, "search", err)
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			return out.Success(ItemList{Items: items, Total: len(items)})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results (0 = config default)")
	cmd.Flags().IntVar(&offset, "offset", 0, "results to skip")
	cmd.Flags().BoolVar(&useMatch, "match", false, "use the boolean full-text match path")

	return cmd
}
