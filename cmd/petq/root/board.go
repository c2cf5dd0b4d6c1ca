package root

import (
	"github.com/spf13/cobra"

	"petquest/internal/tui"
)

func newBoardCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, a.eng, a.coach, cmd.OutOrStdout())
		},
	}
}
