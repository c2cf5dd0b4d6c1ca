package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"petquest/internal/ui"
)

func newRmCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := resolveTask(a.eng.Tasks(), args[0])
			if err != nil {
				return err
			}
			if err := a.eng.DeleteTask(ctx, task.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted "+task.Title+"."))
			return nil
		},
	}
}
