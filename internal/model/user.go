package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents a player account. The aggregate fields (HighScore,
// TotalCoins, LevelsCompleted) are derived from the score ledger and
// mutated exclusively through Storage.ApplyScoreAggregates; everything
// else is fixed at registration.
type User struct {
	ID           UserID
	Username     string // login username, unique, case-sensitive
	Email        string
	PasswordHash string // bcrypt hash, never the raw password
	CreatedAt    time.Time

	// Aggregates folded from the score ledger
	HighScore       int // high-water mark, never regresses
	TotalCoins      int // running sum across all submissions
	LevelsCompleted int // high-water mark of deepest level reached
}
