package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/status"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that JSON files are valid decks",
		Long:  "Parse each file as a deck and print its item count or the problem found. Use - to read stdin.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.close()

	out := cmd.OutOrStdout()
	failed := 0
	for _, name := range args {
		n, err := validateFile(cmd.InOrStdin(), name, e.logger)
		if err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s: %s\n", name, status.Describe(err))
			continue
		}
		fmt.Fprintf(out, "✓ %s: %d items\n", name, n)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}

func validateFile(stdin io.Reader, name string, logger *slog.Logger) (int, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return 0, err
	}

	items, err := deck.Parse(data)
	if err != nil {
		logger.Debug("validate failed", "file", name, "error", err)
		return 0, err
	}
	return items.Len(), nil
}
