package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"petquest/internal/ui"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your pet, points, streak and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			pet := a.eng.ActivePet()
			mood := string(a.eng.Mood())
			theme := a.eng.ActiveTheme()
			stats := a.eng.Stats()

			fmt.Fprintln(out, ui.Heading(ui.PetIcon(string(pet.Type)), pet.Name))
			fmt.Fprintf(out, "%s %s\n", ui.MoodFace(mood), ui.MoodText(mood))
			if acc, ok := a.eng.ActiveAccessory(); ok {
				fmt.Fprintln(out, ui.LabelValue("Wearing", acc.Name))
			}
			fmt.Fprintln(out, ui.LabelValue("Theme", theme.Name+" "+ui.Swatch(theme.PrimaryColor)))
			fmt.Fprintln(out, ui.LabelValue("Points", ui.Points(a.eng.Points())))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			fmt.Fprintln(out, ui.LabelValue("Completed", stats.TotalCompleted))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d %s", stats.CurrentStreak, ui.IconFire)))
			fmt.Fprintln(out, ui.LabelValue("Early", stats.EarlyCompletions))
			fmt.Fprintln(out, ui.LabelValue("Lifetime points", stats.TotalPointsEarned))
			fmt.Fprintln(out, ui.LabelValue("This week", stats.WeeklyCompleted))
			fmt.Fprintln(out, ui.LabelValue("This month", stats.MonthlyCompleted))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			for _, ach := range a.eng.Achievements() {
				if ach.Unlocked {
					fmt.Fprintf(out, "- %s %s %s\n", ach.Icon, ui.Gold.Render(ach.Title), ui.Muted.Render(ach.Description))
				} else {
					fmt.Fprintf(out, "- 🔒 %s\n", ui.Muted.Render(ach.Title+": "+ach.Description))
				}
			}
			return nil
		},
	}
	return cmd
}
