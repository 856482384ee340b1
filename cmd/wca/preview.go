package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func previewCmd() *cobra.Command {
	var context int
	var query string
	var width int

	cmd := &cobra.Command{
		Use:   "preview <transcript> <position>",
		Short: "Show the messages around one message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hit, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position must be a number: %w", err)
			}

			s, err := loadSession(args[0])
			if err != nil {
				return err
			}

			if width == 0 && term.IsTerminal(int(os.Stdout.Fd())) {
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					width = w
				}
			}

			out, err := render.Conversation(s.corpus, filepath.Base(s.path), render.ConversationOptions{
				Hit:     hit,
				Context: context,
				Width:   width,
				Query:   query,
			})
			if err != nil {
				return err
			}

			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().IntVar(&context, "context", 10, "Messages before/after the hit to show (-1 = all)")
	cmd.Flags().StringVar(&query, "query", "", "Search query for keyword highlighting")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width (0 = terminal width, no wrap when piped)")

	return cmd
}
