package root

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"petquest/internal/engine"
	"petquest/internal/ui"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks by deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := a.eng.Tasks()
			sort.SliceStable(tasks, func(i, j int) bool {
				if tasks[i].Completed != tasks[j].Completed {
					return !tasks[i].Completed
				}
				return tasks[i].Deadline.Before(tasks[j].Deadline)
			})

			out := cmd.OutOrStdout()
			now := a.eng.Now()
			shown := 0
			for _, t := range tasks {
				if t.Completed && !all {
					continue
				}
				shown++
				fmt.Fprintln(out, formatTask(a.eng, t, now))
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks. Add one with: petq add <title> --due 3h"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")
	return cmd
}

func formatTask(eng *engine.Engine, t engine.Task, now time.Time) string {
	id := ui.Key.Render(shortID(t.ID))
	category := ui.Muted.Render("[" + eng.CategoryName(t.CategoryID) + "]")
	if t.Completed {
		earned := 0
		if t.PointsEarned != nil {
			earned = *t.PointsEarned
		}
		return fmt.Sprintf("%s %s %s %s +%d", ui.IconDone, id, ui.Done.Render(t.Title), category, earned)
	}
	return fmt.Sprintf("[ ] %s %s %s %s %s", id, t.Title, category, ui.TimeLeft(t.Deadline, now),
		ui.Muted.Render(fmt.Sprintf("(worth %d)", engine.Score(t.Deadline, now))))
}
