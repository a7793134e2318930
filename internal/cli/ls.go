package cli

import (
	"github.com/spf13/cobra"
)

// NewLsCommand creates the ls subcommand.
func NewLsCommand(opts *RootOptions) *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items, newest first",
		Args:  cobra.NoArgs,
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
			items, err := st.ListItems(ctx, limit, offset)
			if err != nil {
				return WrapExitError(ExitCommandError, "list items", err)
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			return out.Success(ItemList{Items: items, Total: len(items)})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results (0 = config default)")
	cmd.Flags().IntVar(&offset, "offset", 0, "results to skip")

	return cmd
}
