package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/penguin/internal/config"
	"github.com/JaimeStill/penguin/internal/mediation"
	"github.com/JaimeStill/penguin/internal/verdict"
	"github.com/JaimeStill/penguin/pkg/completion"
)

type outputFlags struct {
	raw   bool
	style string
	width int
}

func (o *outputFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&o.raw, "raw", false, "print the verdict markdown instead of cards")
	fs.StringVar(&o.style, "style", "auto", "glamour style for --raw (auto, dark, light, notty, ascii)")
	fs.IntVar(&o.width, "width", 100, "output width in columns")
}

func (o *outputFlags) write(w io.Writer, raw, labelA, labelB string) error {
	if o.raw {
		if strings.TrimSpace(raw) == "" {
			_, err := fmt.Fprintln(w, noVerdict)
			return err
		}
		out, err := markdown(raw, o.style, o.width)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	}

	d := verdict.Render(verdict.Parse(raw), labelA, labelB)
	_, err := io.WriteString(w, cards(d, o.width))
	return err
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		out          outputFlags
		nameA, nameB string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a saved verdict",
		Long: `Parses verdict markdown from file, or stdin when file is omitted or "-",
and prints it as cards with the partner placeholders replaced by their names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 0 || args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read verdict: %w", err)
			}

			a.logger.Debug("rendering verdict", "bytes", len(data))

			labelA, labelB := mediation.Labels(nameA, nameB)
			return out.write(cmd.OutOrStdout(), string(data), labelA, labelB)
		},
	}

	out.bind(cmd)
	cmd.Flags().StringVar(&nameA, "name-a", "", "first partner's name")
	cmd.Flags().StringVar(&nameB, "name-b", "", "second partner's name")

	return cmd
}

func newPromptCmd(a *app) *cobra.Command {
	var (
		rf         reportFlags
		systemOnly bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompts the judge would send for a case",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if systemOnly {
				_, err := fmt.Fprint(w, mediation.SystemPrompt)
				return err
			}

			r, err := rf.report(cmd)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(w, "%s\n\n---\n\n%s\n", mediation.SystemPrompt, mediation.UserPrompt(r))
			return err
		},
	}

	rf.bind(cmd)
	cmd.Flags().BoolVar(&systemOnly, "system", false, "print only the system prompt")

	return cmd
}

func newAskCmd(a *app) *cobra.Command {
	var (
		rf  reportFlags
		out outputFlags
	)

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask the Penguin Judge for a verdict",
		Long: `Sends the case to the configured completion provider and prints the
verdict. Set PENGUIN_AGENT_PROVIDER, PENGUIN_AGENT_TOKEN and friends, or
run from a directory holding config.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.report(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			client, err := completion.New(&cfg.Agent, a.logger)
			if err != nil {
				return err
			}

			raw, err := mediation.New(client, a.logger).Deliberate(cmd.Context(), r)
			if err != nil {
				return err
			}

			labelA, labelB := r.Labels()
			return out.write(cmd.OutOrStdout(), raw, labelA, labelB)
		},
	}

	rf.bind(cmd)
	out.bind(cmd)

	return cmd
}
