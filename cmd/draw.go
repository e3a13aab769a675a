package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/card"
	"github.com/abhisek/flashdeck/internal/study"
)

func newDrawCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "draw",
		Short: "Draw cards in the terminal without the full-screen UI",
		Long: `Load --source and/or --file, draw cards per --mode and --count, and
show them one at a time. Press Enter to reveal each answer. After the last
card, Enter draws a new set and q quits.`,
		Args: cobra.NoArgs,
		RunE: runDraw,
	}
	c.Flags().Bool("reveal", false, "Print answers immediately and exit after one draw")
	return c
}

func runDraw(cmd *cobra.Command, args []string) error {
	reveal, _ := cmd.Flags().GetBool("reveal")

	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.close()

	st, err := e.newState()
	if err != nil {
		return err
	}
	if err := preload(cmd, e, st); err != nil {
		return err
	}
	if st.Items.Empty() {
		return errors.New("nothing to draw: pass --source or --file with at least one item")
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for round := 1; ; round++ {
		if err := st.Generate(); err != nil {
			return err
		}
		if !showCards(out, scanner, st.Cards, reveal) || reveal {
			return nil
		}

		fmt.Fprint(out, "Enter to draw again, q to quit: ")
		if !scanner.Scan() || strings.EqualFold(strings.TrimSpace(scanner.Text()), "q") {
			fmt.Fprintln(out)
			return nil
		}
		e.logger.Debug("draw again", "round", round+1)
	}
}

// preload fills the state from --file and then --source, the same way the
// TUI does on start.
func preload(cmd *cobra.Command, e *env, st *study.State) error {
	text, err := e.readFile()
	if err != nil {
		return err
	}
	if text != "" {
		st.Text = text
		if err := st.LoadText(); err != nil {
			return fmt.Errorf("%s: %w", e.cfg.File, err)
		}
	}
	if len(e.cfg.Sources) > 0 {
		res, err := e.loader.Load(cmd.Context(), e.cfg.Sources...)
		if err := st.ApplyLoad(res, err); err != nil {
			return err
		}
	}
	return nil
}

// showCards prints each card and, unless reveal is set, waits for a line
// on in before clicking it. It returns false when input ends.
func showCards(out io.Writer, in *bufio.Scanner, cards []*card.Card, reveal bool) bool {
	for i, c := range cards {
		fmt.Fprintf(out, "── Card %d/%d ──\n", i+1, len(cards))
		fmt.Fprintf(out, "Q: %s\n", c.Item.Question)

		if !reveal {
			fmt.Fprintf(out, "(%s: press Enter) ", c.Prompt())
			if !in.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return false
			}
		}
		c.Click()
		fmt.Fprintf(out, "A: %s\n\n", c.Item.Answer)
	}
	return true
}
