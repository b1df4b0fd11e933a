package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dkoosis/routecmp/internal/logging"
	"github.com/dkoosis/routecmp/pkg/render"
	"github.com/dkoosis/routecmp/pkg/view"
)

func newViewCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "Watch an assessment file and re-render on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, opts)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Debug)
			defer func() { _ = logger.Sync() }()

			if _, err := os.Stat(args[0]); err != nil {
				return fmt.Errorf("view: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logger.Debug("starting viewer")
			return view.Run(ctx, args[0], render.ThemeByName(cfg.Theme))
		},
	}
}
