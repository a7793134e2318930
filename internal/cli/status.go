package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmehra/tracklet/internal/item"
)

// NewStatusCommand creates the status subcommand, listing the workflow
// statuses the status:/is: search directives resolve against.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List workflow statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, _, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			statuses, err := st.ListStatuses(ctx)
			if err != nil {
				return WrapExitError(ExitCommandError, "list statuses", err)
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if opts.Format == "json" {
				return out.Success(statuses)
			}
			return out.Success(renderStatuses(statuses))
		},
	}
	return cmd
}

func renderStatuses(statuses []item.StatusRef) string {
	var lines []string
	for _, ref := range statuses {
		kind := "open"
		if ref.Closable {
			kind = "closed"
		}
		lines = append(lines, fmt.Sprintf("%-12s  %s", ref.Name, kind))
	}
	return strings.Join(lines, "\n")
}
