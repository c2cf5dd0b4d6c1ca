package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"petquest/internal/ui"
)

const Version = "0.1.0"

type rootOptions struct {
	home     string
	dbPath   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "petq",
		Short:         "Petquest: a task tracker with a pet that cheers you on",
		Long:          "Petquest is a local-first task tracker. Finishing tasks early earns points to spend on pets, accessories and themes.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.home, "home", "", "Config directory (default $PETQUEST_HOME or ~/.petquest)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Database path (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(
		newAddCmd(opts),
		newDoCmd(opts),
		newRmCmd(opts),
		newListCmd(opts),
		newStatusCmd(opts),
		newShopCmd(opts),
		newBuyCmd(opts),
		newEquipCmd(opts),
		newCategoryCmd(opts),
		newFriendCmd(opts),
		newLeaderboardCmd(opts),
		newQuoteCmd(opts),
		newSuggestCmd(opts),
		newBoardCmd(opts),
		newServeCmd(opts),
		newExportCmd(opts),
		newDBCmd(opts),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
