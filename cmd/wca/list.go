package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Zuo-Peng/chat-analyzer/internal/config"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/scan"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List chat exports under exports_root, newest first",
		Long: `Scan exports_root for .txt files and show, for each one that parses as a
chat export, its message count, participant count and date span. Output is TSV:
  name, messages, participants, first, last, path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			files, err := scan.ScanRoot(cfg.ExportsRoot)
			if err != nil {
				return fmt.Errorf("scan %s: %w", cfg.ExportsRoot, err)
			}

			shown := 0
			for _, f := range files {
				if limit > 0 && shown >= limit {
					break
				}
				c, err := parse.ParseFile(f.Path, cfg.ParseOptions()...)
				if err != nil {
					slog.Debug("skipping file", "path", f.Path, "err", err)
					continue
				}
				first, last := c.Span()
				fmt.Printf("%s\t%d\t%d\t%s\t%s\t%s\n",
					f.Name,
					c.Len(),
					len(c.Participants()),
					first.Format(time.DateOnly),
					last.Format(time.DateOnly),
					f.Path,
				)
				shown++
			}

			if shown == 0 {
				fmt.Fprintf(os.Stderr, "No chat exports found under %s.\n", cfg.ExportsRoot)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max exports to show (0 = no limit)")

	return cmd
}
