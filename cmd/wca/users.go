package main

import (
	"fmt"

	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	var jsonOut bool
	var top int

	cmd := &cobra.Command{
		Use:   "users <transcript>",
		Short: "Rank participants by message count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(args[0])
			if err != nil {
				return err
			}

			ranking := analyze.MostBusyUsers(s.corpus)
			if top > 0 {
				ranking = analyze.Top(ranking, top)
			}
			if jsonOut {
				return writeJSON(ranking)
			}
			if len(ranking) == 0 {
				fmt.Println("No participant messages.")
				return nil
			}
			fmt.Print(render.Users(ranking, 80))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the ranking as JSON")
	cmd.Flags().IntVar(&top, "top", 0, "Show only the N busiest (0 = all)")

	return cmd
}
