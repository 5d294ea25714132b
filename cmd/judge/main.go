// Command judge is a terminal front end for the Penguin Love Judge: it
// renders saved verdicts, prints the prompts for a case, and asks the
// configured completion provider for a new verdict.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	verbose bool
	logger  *slog.Logger
	stderr  io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:   "judge",
		Short: "Penguin Love Judge from the terminal",
		Long: `judge hears both sides of a couple's conflict and renders the
Penguin Judge's verdict as terminal cards.

Agent settings come from config.toml and PENGUIN_AGENT_* variables, the
same as the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRenderCmd(a),
		newPromptCmd(a),
		newAskCmd(a),
	)

	return root
}
