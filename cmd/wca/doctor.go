package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/Zuo-Peng/chat-analyzer/internal/config"
	"github.com/Zuo-Peng/chat-analyzer/internal/index"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/scan"
	"github.com/spf13/cobra"
)

// doctorSample exercises the parser and the FTS5 index.
const doctorSample = "15/01/2024, 09:00 - Alice: good morning\n" +
	"15/01/2024, 09:01 - Bob: morning!"

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, exports root, stopwords and FTS5",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			if cfg.Path == "" {
				fmt.Println("  File: (none, using defaults)")
			} else {
				fmt.Printf("  File: %s\n", cfg.Path)
			}
			fmt.Printf("  Date order: %s\n", cfg.DateOrder)
			fmt.Printf("  Media placeholder: %q\n", cfg.MediaPlaceholder)
			fmt.Printf("  Word limit: %d\n", cfg.WordLimit)

			fmt.Println("\n=== Exports Root ===")
			checkDir("Root", cfg.ExportsRoot)
			files, err := scan.ScanRoot(cfg.ExportsRoot)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
			} else {
				fmt.Printf("  .txt files: %d\n", len(files))
			}

			fmt.Println("\n=== Stopwords ===")
			if cfg.StopwordsFile == "" {
				fmt.Printf("  Built-in list: %d words\n", len(analyze.DefaultStopwords()))
			} else if sw, err := analyze.LoadStopwords(cfg.StopwordsFile); err != nil {
				fmt.Printf("  %s: ERROR %v\n", cfg.StopwordsFile, err)
			} else {
				fmt.Printf("  %s: %d words\n", cfg.StopwordsFile, len(sw))
			}

			fmt.Println("\n=== FTS5 ===")
			c, err := parse.Parse(doctorSample)
			if err != nil {
				return fmt.Errorf("parse sample: %w", err)
			}
			db, _, err := index.Load(c)
			if err != nil {
				fmt.Printf("  FTS5 error: %v\n", err)
				return nil
			}
			defer db.Close()

			msgCount, err := db.MessageCount()
			if err != nil {
				return fmt.Errorf("count messages: %w", err)
			}
			ftsCount, err := db.FTSCount()
			if err != nil {
				fmt.Printf("  FTS5 error: %v\n", err)
				return nil
			}
			fmt.Printf("  FTS5 entries: %d\n", ftsCount)
			if ftsCount == msgCount {
				fmt.Println("  Status: OK (synced)")
			} else {
				fmt.Printf("  Status: MISMATCH (messages=%d, fts=%d)\n", msgCount, ftsCount)
			}

			return nil
		},
	}
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
