package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/app"
)

// runApp resolves config and launches the TUI.
func runApp(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.close()

	st, err := e.newState()
	if err != nil {
		return err
	}
	text, err := e.readFile()
	if err != nil {
		return err
	}

	e.logger.Info("starting", "assets", e.loader.Fetcher().Location(), "sources", e.cfg.Sources)
	return app.Run(app.Options{
		Loader:         e.loader,
		State:          st,
		Filters:        e.filters(cmd.Context()),
		Logger:         e.logger,
		InitialSources: e.cfg.Sources,
		InitialText:    text,
	})
}
