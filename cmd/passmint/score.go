package main

import (
	"github.com/spf13/cobra"

	"github.com/passmint/passmint-go/internal/service"
)

// NewScoreCmd creates the score subcommand.
func NewScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <password>",
		Short: "Rate the strength of a password",
		Long: `Rate the strength of any string with the length-plus-coverage
heuristic and print an advisory zxcvbn estimate alongside it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := service.NewScorerService().Score(args[0])
			cmd.Printf("score: %d/100\n", resp.Score)
			cmd.Printf("tier: %s\n", resp.Tier)
			cmd.Printf("zxcvbn: %d/4 (crack time: %s)\n", resp.ZxcvbnScore, resp.CrackTimeDisplay)
			return nil
		},
	}
}
