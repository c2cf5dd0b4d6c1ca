package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"petquest/internal/coach"
	"petquest/internal/engine"
	"petquest/internal/ui"
)

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Ask your pet for a pep talk",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			pet := a.eng.ActivePet()
			q := a.coach.Quote(ctx, coach.QuoteRequest{
				PetName:     pet.Name,
				UrgentCount: engine.UrgentCount(a.eng.Tasks(), a.eng.Now()),
				Happy:       a.eng.Mood() == engine.MoodHappy,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", ui.PetIcon(string(pet.Type)), pet.Name, q)
			return nil
		},
	}
}

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest follow-up tasks from your recent ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if !a.coach.Enabled() {
				fmt.Fprintln(out, ui.Muted.Render("No coach configured. Set coach.provider in config.yaml."))
				return nil
			}
			var titles []string
			for _, t := range a.eng.Tasks() {
				titles = append(titles, t.Title)
			}
			suggestions := a.coach.Suggestions(ctx, titles)
			if len(suggestions) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No suggestions right now."))
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintf(out, "%s %s\n", ui.IconSparkle, s)
			}
			return nil
		},
	}
}
