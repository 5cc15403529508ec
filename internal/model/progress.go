package model

import "time"

// ProgressID uniquely identifies a progress checkpoint
type ProgressID string

// PowerUp is a held power-up in a saved game
type PowerUp string

// Known power-ups. The set is open: unrecognized values round-trip
// through storage untouched.
const (
	PowerUpMushroom   PowerUp = "mushroom"
	PowerUpFireFlower PowerUp = "fire_flower"
	PowerUpStar       PowerUp = "star"
	PowerUpOneUp      PowerUp = "one_up"
)

// Checkpoint is the position/level bookmark within a saved game
type Checkpoint struct {
	Level int
	Zone  string
	X     int
	Y     int
}

// ProgressCheckpoint is a user's single mutable "continue game" save.
// One checkpoint per user; saves overwrite wholesale (last writer wins,
// no merging) while keeping the checkpoint's id stable across upserts.
type ProgressCheckpoint struct {
	ID             ProgressID
	UserID         UserID
	CurrentLevel   int
	LivesRemaining int
	Score          int // in-flight run score, unrelated to the ledger
	Coins          int // in-flight coins, unrelated to aggregates
	PowerUps       []PowerUp
	LastCheckpoint Checkpoint
	UpdatedAt      time.Time
}
