package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"petquest/internal/social"
	"petquest/internal/ui"
)

func newFriendCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friend",
		Short: "Add friends by code and see your own code",
	}

	add := &cobra.Command{
		Use:   "add <code>",
		Short: "Add a friend by their code",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("code is required")
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

			f, err := a.eng.AddFriend(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.PetIcon(string(f.PetType)), ui.Good.Render("Added "+f.Name+"!"))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List friends",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LabelValue("Your code", ui.Gold.Render(a.eng.UserCode())))
			friends := a.eng.Friends()
			if len(friends) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No friends yet. Share your code!"))
				return nil
			}
			for _, f := range friends {
				fmt.Fprintln(out, friendLine(f))
			}
			return nil
		},
	}

	code := &cobra.Command{
		Use:   "code",
		Short: "Print your friend code",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), a.eng.UserCode())
			return nil
		},
	}

	cmd.AddCommand(add, list, code)
	return cmd
}

func friendLine(f social.Friend) string {
	return fmt.Sprintf("- %s %s %s %s", ui.PetIcon(string(f.PetType)), f.Name, ui.Muted.Render(f.Code),
		ui.Muted.Render(fmt.Sprintf("(week %d, month %d)", f.WeeklyScore, f.MonthlyScore)))
}

func newLeaderboardCmd(opts *rootOptions) *cobra.Command {
	var monthly bool

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank yourself against your friends",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			window := social.Weekly
			if monthly {
				window = social.Monthly
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFriends, "Leaderboard ("+string(window)+")"))
			for i, e := range a.eng.Leaderboard(window) {
				name := e.Name
				if e.IsUser {
					name = ui.Gold.Render(name)
				}
				fmt.Fprintf(out, "%2d. %s %s %d\n", i+1, ui.PetIcon(string(e.PetType)), name, e.Score)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&monthly, "monthly", "m", false, "Rank by monthly completions instead of weekly")
	return cmd
}
