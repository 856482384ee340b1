package main

import (
	"fmt"

	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/spf13/cobra"
)

type tableFunc func(analyze.Scope, *parse.Corpus, analyze.Options) []analyze.FrequencyEntry

// frequencyCmd builds a command printing one token table for a scope.
// When cloud is non-nil a --cloud flag switches to it.
func frequencyCmd(use, short string, table, cloud tableFunc) *cobra.Command {
	var user string
	var jsonOut, useCloud bool
	var limit int

	cmd := &cobra.Command{
		Use:   use + " <transcript>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0])
			if err != nil {
				return err
			}
			scope, err := s.scope(user)
			if err != nil {
				return err
			}
			if limit > 0 {
				s.opts.WordLimit = limit
			}

			if useCloud {
				table = cloud
			}
			entries := table(scope, s.corpus, s.opts)
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			if jsonOut {
				return writeJSON(entries)
			}
			fmt.Print(render.Frequency(entries, 80))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", `Participant to analyze (default "Overall")`)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the table as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Rows to show (0 = word_limit for words, all emoji)")

	if cloud != nil {
		cmd.Flags().BoolVar(&useCloud, "cloud", false, "Print every word-cloud token with its weight")
	}

	return cmd
}

func wordsCmd() *cobra.Command {
	return frequencyCmd("words", "Most common words, stopwords and media excluded", analyze.MostCommonWords, analyze.WordWeights)
}

func emojiCmd() *cobra.Command {
	return frequencyCmd("emoji", "Emoji frequency table", analyze.EmojiFrequency, nil)
}
