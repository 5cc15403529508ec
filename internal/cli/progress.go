package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Save-checkpoint commands",
	}

	cmd.AddCommand(newProgressSaveCmd())
	cmd.AddCommand(newProgressLoadCmd())
	cmd.AddCommand(newProgressDeleteCmd())

	return cmd
}

func newProgressSaveCmd() *cobra.Command {
	var userID, zone string
	var level, lives, score, coins, cpLevel, x, y int
	var powerUps []string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a progress checkpoint (overwrites any existing one)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user-id is required")
			}

			if powerUps == nil {
				powerUps = []string{}
			}

			req := map[string]any{
				"user_id":         userID,
				"current_level":   level,
				"lives_remaining": lives,
				"score":           score,
				"coins":           coins,
				"power_ups":       powerUps,
				"last_checkpoint": map[string]any{
					"level": cpLevel,
					"zone":  zone,
					"x":     x,
					"y":     y,
				},
			}

			var result Progress
			if err := client.Post("/api/v1/progress", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "User id (required)")
	cmd.Flags().IntVar(&level, "level", 1, "Current level")
	cmd.Flags().IntVar(&lives, "lives", 3, "Lives remaining")
	cmd.Flags().IntVar(&score, "score", 0, "Score in progress")
	cmd.Flags().IntVar(&coins, "coins", 0, "Coins in progress")
	cmd.Flags().StringSliceVar(&powerUps, "power-up", nil, "Held power-up (repeatable)")
	cmd.Flags().IntVar(&cpLevel, "checkpoint-level", 0, "Checkpoint level")
	cmd.Flags().StringVar(&zone, "checkpoint-zone", "", "Checkpoint zone")
	cmd.Flags().IntVar(&x, "checkpoint-x", 0, "Checkpoint x position")
	cmd.Flags().IntVar(&y, "checkpoint-y", 0, "Checkpoint y position")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newProgressLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <user-id>",
		Short: "Load a user's progress checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Progress
			if err := client.Get("/api/v1/progress/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProgressDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user's progress checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]string
			if err := client.Delete("/api/v1/progress/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(result["message"])
			return nil
		},
	}
}
