package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmehra/tracklet/internal/item"
)

// NewShowCommand creates the show subcommand.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one item in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, _, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			it, ok, err := st.GetItem(ctx, args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "get item", err)
			}
			if !ok {
				return NewExitError(ExitFailure, fmt.Sprintf("no item with id %q", args[0]))
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if opts.Format == "json" {
				return out.Success(it)
			}
			return out.Success(renderItem(it))
		},
	}
	return cmd
}

func renderItem(it item.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "id:       %s\n", it.ID)
	fmt.Fprintf(&b, "title:    %s\n", it.Title)
	fmt.Fprintf(&b, "status:   %s\n", it.Status)
	fmt.Fprintf(&b, "type:     %s\n", it.Type)
	fmt.Fprintf(&b, "priority: %s\n", it.Priority)
	if len(it.Tags) > 0 {
		fmt.Fprintf(&b, "tags:     %s\n", strings.Join(it.Tags, " "))
	}
	if it.Description != "" {
		fmt.Fprintf(&b, "desc:     %s\n", it.Description)
	}
	fmt.Fprintf(&b, "created:  %s", it.CreatedAt.Format("2006-01-02 15:04:05"))
	if it.Content != "" {
		fmt.Fprintf(&b, "\n\n%s", it.Content)
	}
	return b.String()
}
