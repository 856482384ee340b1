package main

import (
	"fmt"

	"github.com/Zuo-Peng/chat-analyzer/internal/config"
	"github.com/Zuo-Peng/chat-analyzer/internal/index"
	"github.com/Zuo-Peng/chat-analyzer/internal/open"
	"github.com/Zuo-Peng/chat-analyzer/internal/scan"
	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	var line, hit int

	cmd := &cobra.Command{
		Use:   "open <transcript>",
		Short: "Open the export in $EDITOR at a line or message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hit < 0 {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				path, err := scan.Resolve(args[0], cfg.ExportsRoot)
				if err != nil {
					return err
				}
				return open.OpenLine(path, line)
			}

			s, err := loadSession(args[0])
			if err != nil {
				return err
			}
			db, _, err := index.Load(s.corpus)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := open.OpenMessage(db, s.path, hit); err != nil {
				return fmt.Errorf("open %s: %w", s.path, err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 1, "Line to jump to")
	cmd.Flags().IntVar(&hit, "hit", -1, "Message position to jump to (overrides --line)")

	return cmd
}
