package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show global statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GlobalStats

			if err := client.Get("/api/v1/stats/global", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
