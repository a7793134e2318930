package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmehra/tracklet/internal/item"
)

// NewAddCommand creates the add subcommand.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	var (
		description string
		content     string
		itemType    string
		priority    string
		status      string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, _, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			ref, ok, err := st.ResolveStatusByName(ctx, status)
			if err != nil {
				return WrapExitError(ExitCommandError, "resolve status", err)
			}
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown status %q", status))
			}

			created, err := st.CreateItem(ctx, item.Item{
				Title:       args[0],
				Description: description,
				Content:     content,
				Type:        itemType,
				Priority:    strings.ToUpper(priority),
				StatusID:    ref.ID,
				Status:      ref.Name,
				Tags:        tags,
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "create item", err)
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if opts.Format == "json" {
				return out.Success(created)
			}
			return out.Success("created " + created.ID)
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "short description")
	cmd.Flags().StringVar(&content, "content", "", "long-form content")
	cmd.Flags().StringVar(&itemType, "type", "task", "item type (task|bug|note|...)")
	cmd.Flags().StringVar(&priority, "priority", "MEDIUM", "priority (LOW|MEDIUM|HIGH|CRITICAL)")
	cmd.Flags().StringVar(&status, "status", "Open", "initial workflow status")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags (comma separated)")

	return cmd
}
