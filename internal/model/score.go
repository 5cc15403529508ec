package model

import "time"

// ScoreID uniquely identifies a score ledger entry
type ScoreID string

// ScoreEntry is one immutable record in the append-only score ledger.
// Entries are never updated or deleted once appended.
type ScoreEntry struct {
	ID             ScoreID
	UserID         UserID
	Username       string // snapshot at submission time
	Score          int
	LevelReached   int
	CoinsCollected int
	GameDuration   int // seconds
	CreatedAt      time.Time
}
