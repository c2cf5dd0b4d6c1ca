package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"petquest/internal/catalog"
	"petquest/internal/ui"
)

func newDoCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
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
			res, err := a.eng.CompleteTask(ctx, task.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Muted.Render("Already done."))
				return nil
			}
			fmt.Fprintf(out, "%s %s %s\n", ui.IconDone, task.Title, ui.Points(res.Earned))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d %s", res.Stats.CurrentStreak, ui.IconFire)))
			for _, id := range res.NewAchievements {
				if def, ok := catalog.LookupAchievement(id); ok {
					fmt.Fprintf(out, "%s %s %s\n", ui.IconTrophy, ui.Gold.Render(def.Title), ui.Muted.Render(def.Description))
				}
			}
			if len(res.NewPets) > 0 {
				var names []string
				for _, id := range res.NewPets {
					if p, ok := catalog.LookupPet(id); ok {
						names = append(names, p.Name)
					}
				}
				fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" New pet: "+strings.Join(names, ", ")))
			}
			return nil
		},
	}
	return cmd
}
