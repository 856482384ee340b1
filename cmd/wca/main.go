package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/chat-analyzer/internal/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var logLevel string
	var logJSON bool

	rootCmd := &cobra.Command{
		Use:     "wca",
		Short:   "WhatsApp Chat Analyzer - statistics and search over exported chat transcripts",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.New(os.Stderr, logLevel, logJSON)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug/info/warn/error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(wordsCmd())
	rootCmd.AddCommand(emojiCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
