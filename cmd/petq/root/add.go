package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"petquest/internal/engine"
	"petquest/internal/ui"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var due string
	var category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task with a deadline",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("title is required")
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

			deadline, err := engine.ParseDeadline(due, a.eng.Now(), a.eng.Location())
			if err != nil {
				return err
			}
			categoryID, err := resolveCategory(a.eng, category)
			if err != nil {
				return err
			}
			task, err := a.eng.AddTask(ctx, strings.Join(args, " "), deadline, categoryID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.IconPlus, ui.Key.Render(shortID(task.ID)), task.Title,
				ui.Muted.Render("due "+task.Deadline.In(a.eng.Location()).Format("Mon Jan 2 15:04")))
			return nil
		},
	}

	cmd.Flags().StringVarP(&due, "due", "d", "tomorrow", "Deadline (30m, 3h, 2d, 1w, today, tomorrow, YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category id or name")
	return cmd
}
