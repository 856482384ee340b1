package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/index"
	"github.com/Zuo-Peng/chat-analyzer/internal/search"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorBlue    = "\033[1;34m"
	sColorDim     = "\033[2m"
)

func colorizeSnippet(snippet string, color bool) string {
	if !color {
		snippet = strings.ReplaceAll(snippet, ">>>", "")
		return strings.ReplaceAll(snippet, "<<<", "")
	}
	snippet = strings.ReplaceAll(snippet, ">>>", sColorBoldRed)
	return strings.ReplaceAll(snippet, "<<<", sColorReset)
}

func colorize(s, color string, on bool) string {
	if !on {
		return s
	}
	return color + s + sColorReset
}

func searchCmd() *cobra.Command {
	var user, since string
	var limit int
	var color bool

	cmd := &cobra.Command{
		Use:   "search <transcript> <query>",
		Short: "Full-text search over one chat export",
		Long: `Search message bodies with SQLite FTS5. Output is TSV for fzf integration:
  position, line, timestamp, sender, snippet

Recommended shell function (add to .zshrc):
  wcaf() {
    wca search "$1" "${@:2}" --color | fzf \
      --ansi \
      --delimiter='\t' --with-nth=3.. \
      --preview "wca preview '$1' {1} --context 5 --query {q}" \
      --preview-window=right:60%:wrap \
      --bind "enter:execute(wca open '$1' --line {2})"
  }`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0])
			if err != nil {
				return err
			}

			db, stats, err := index.Load(s.corpus)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintf(os.Stderr, "Indexed %s\n", stats)

			results, err := search.Search(db, search.Options{
				Query:  strings.Join(args[1:], " "),
				Sender: user,
				Since:  since,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}

			color = color || term.IsTerminal(int(os.Stdout.Fd()))
			for _, r := range results {
				snippet := strings.ReplaceAll(r.Snippet, "\t", " ")
				snippet = strings.ReplaceAll(snippet, "\n", " ")
				sender := r.Sender
				if r.System {
					sender = "group_notification"
				}
				// first two fields (position, line) stay plain for fzf {1} {2}
				fmt.Printf("%d\t%d\t%s\t%s\t%s\n",
					r.Seq,
					r.Line,
					colorize(r.Timestamp, sColorDim, color),
					colorize(sender, sColorBlue, color),
					colorizeSnippet(snippet, color),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Only messages from this participant")
	cmd.Flags().StringVar(&since, "since", "", "Only messages since date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 100, "Max results")
	cmd.Flags().BoolVar(&color, "color", false, "Force ANSI colors when piping")

	return cmd
}
