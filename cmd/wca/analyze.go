package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/Zuo-Peng/chat-analyzer/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func analyzeCmd() *cobra.Command {
	var user string
	var jsonOut, plain bool
	var width int

	cmd := &cobra.Command{
		Use:   "analyze <transcript>",
		Short: "Show the analysis dashboard for a chat export",
		Long: `Parse a chat export and show statistics, timelines, activity maps,
common words and emoji for everyone ("Overall") or one participant.

<transcript> is a path or the name of a .txt file under exports_root.
Opens an interactive dashboard when stdout is a terminal; prints the
report otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0])
			if err != nil {
				return err
			}
			scope, err := s.scope(user)
			if err != nil {
				return err
			}

			ropts := render.Options{Width: width, BusyUsers: s.cfg.BusyUsers}

			if jsonOut {
				return writeJSON(analyze.Run(scope, s.corpus, s.opts))
			}
			if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(s.corpus, s.opts, ropts, scope)
			}

			if ropts.Width == 0 && term.IsTerminal(int(os.Stdout.Fd())) {
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					ropts.Width = w
				}
			}
			fmt.Print(render.Report(analyze.Run(scope, s.corpus, s.opts), ropts))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", `Participant to analyze (default "Overall")`)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the report instead of opening the dashboard")
	cmd.Flags().IntVar(&width, "width", 0, "Report width (0 = terminal width or 80)")

	return cmd
}
