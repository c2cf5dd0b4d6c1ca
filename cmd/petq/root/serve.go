package root

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"petquest/internal/api"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local JSON API and websocket event stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(commandContext(cmd.Context()), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if addr == "" {
				addr = a.cfg.API.Addr
			}
			srv := api.New(api.Config{
				Addr:   addr,
				Engine: a.eng,
				Coach:  a.coach,
				Logger: a.log,
			})
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config api.addr)")
	return cmd
}

