package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score submission and leaderboard commands",
	}

	cmd.AddCommand(newScoreSubmitCmd())
	cmd.AddCommand(newScoreLeaderboardCmd())
	cmd.AddCommand(newScoreListCmd())

	return cmd
}

func newScoreSubmitCmd() *cobra.Command {
	var userID, username string
	var score, level, coins, duration int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a completed play session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user-id is required")
			}

			req := map[string]any{
				"user_id":         userID,
				"username":        username,
				"score":           score,
				"level_reached":   level,
				"coins_collected": coins,
				"game_duration":   duration,
			}

			var result ScoreEntry
			if err := client.Post("/api/v1/scores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "User id (required)")
	cmd.Flags().StringVar(&username, "name", "", "Username snapshot")
	cmd.Flags().IntVar(&score, "score", 0, "Score")
	cmd.Flags().IntVar(&level, "level", 0, "Level reached")
	cmd.Flags().IntVar(&coins, "coins", 0, "Coins collected")
	cmd.Flags().IntVar(&duration, "duration", 0, "Play duration in seconds")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newScoreLeaderboardCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/scores"
			if limit > 0 {
				path += "?limit=" + strconv.Itoa(limit)
			}

			var result ScoreList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries (default 10)")

	return cmd
}

func newScoreListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List one user's scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/scores/user/" + args[0]
			if limit > 0 {
				path += "?limit=" + strconv.Itoa(limit)
			}

			var result ScoreList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries (default 10)")

	return cmd
}
