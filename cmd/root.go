package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/config"
	"github.com/abhisek/flashdeck/internal/loader"
	"github.com/abhisek/flashdeck/internal/logging"
	"github.com/abhisek/flashdeck/internal/selector"
	"github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/ui/components"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flashdeck",
		Short: "Terminal flashcard viewer",
		Long: `Flashdeck shows question/answer cards loaded from JSON.

Paste or load a JSON array of {"question", "answer"} objects, or fetch named
sources from the assets location, then draw one random card or a shuffled
set of N cards. A card hides its answer until clicked; a second click draws
a new set.`,
		SilenceUsage: true,
		RunE:         runApp,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (default ~/.config/flashdeck/config.yml)")
	flags.String("assets", "", "Directory or http(s) URL holding <source>.json decks (default: bundled decks)")
	flags.StringArray("source", nil, "Source to load on start; repeatable, or space-separated")
	flags.String("file", "", "JSON file to load on start")
	flags.String("mode", config.DefaultMode, "Display mode: random or count")
	flags.Int("count", config.DefaultCount, "Number of cards in count mode")
	flags.String("log-file", "", "Log file, - for stderr")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")

	root.AddCommand(newDrawCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newSourcesCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// env is what every command needs once flags and config are resolved.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	loader *loader.Loader
	close  func() error
}

// setup loads config, opens the log and builds the loader. Commands that
// own the terminal log to a file by default; the others log to stderr.
func setup(cmd *cobra.Command, stderrLog bool) (*env, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logPath := cfg.Log.File
	if logPath == "" && stderrLog {
		logPath = logging.StderrPath
	}
	logger, closeLog, err := logging.Setup(logPath, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	fetcher, err := loader.NewFetcher(cfg.Assets)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Debug("configured", "assets", fetcher.Location(), "mode", cfg.Mode, "count", cfg.Count)

	return &env{
		cfg:    cfg,
		logger: logger,
		loader: loader.New(fetcher, logger),
		close:  closeLog,
	}, nil
}

// newState builds the study state with the configured mode and count.
func (e *env) newState() (*study.State, error) {
	mode, err := selector.ParseMode(e.cfg.Mode)
	if err != nil {
		return nil, err
	}
	st := study.New(nil)
	st.SetMode(mode)
	st.SetCount(e.cfg.Count)
	return st, nil
}

// readFile returns the configured --file contents, or "" when unset.
func (e *env) readFile() (string, error) {
	if e.cfg.File == "" {
		return "", nil
	}
	data, err := os.ReadFile(e.cfg.File)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", e.cfg.File, err)
	}
	return string(data), nil
}

// filters returns the configured filters, or one filter per available
// source plus an "all" filter when none are configured.
func (e *env) filters(ctx context.Context) []components.Filter {
	if len(e.cfg.Filters) > 0 {
		out := make([]components.Filter, len(e.cfg.Filters))
		for i, f := range e.cfg.Filters {
			out[i] = components.Filter{Label: f.Label, Sources: loader.SplitSources(f.Sources...)}
		}
		return out
	}

	ids, err := e.loader.Sources(ctx)
	if err != nil {
		e.logger.Warn("listing sources failed", "location", e.loader.Fetcher().Location(), "error", err)
		return nil
	}
	out := make([]components.Filter, 0, len(ids)+1)
	for _, id := range ids {
		out = append(out, components.Filter{Label: id, Sources: []string{id}})
	}
	if len(ids) > 1 {
		out = append(out, components.Filter{Label: "all", Sources: ids})
	}
	return out
}
