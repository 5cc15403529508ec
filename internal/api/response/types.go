package response

import (
	"time"

	"arcade/internal/model"
)

// User represents a user in API responses. The password hash is never
// part of this shape.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email,omitempty"`
	HighScore       int       `json:"high_score"`
	TotalCoins      int       `json:"total_coins"`
	LevelsCompleted int       `json:"levels_completed"`
	CreatedAt       time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:              string(u.ID),
		Username:        u.Username,
		Email:           u.Email,
		HighScore:       u.HighScore,
		TotalCoins:      u.TotalCoins,
		LevelsCompleted: u.LevelsCompleted,
		CreatedAt:       u.CreatedAt,
	}
}

// AuthResponse is the response for a successful login
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// ScoreEntry represents a score ledger entry in API responses
type ScoreEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Username       string    `json:"username"`
	Score          int       `json:"score"`
	LevelReached   int       `json:"level_reached"`
	CoinsCollected int       `json:"coins_collected"`
	GameDuration   int       `json:"game_duration"`
	CreatedAt      time.Time `json:"created_at"`
}

// ScoreEntryFromModel converts a model.ScoreEntry
func ScoreEntryFromModel(e *model.ScoreEntry) ScoreEntry {
	return ScoreEntry{
		ID:             string(e.ID),
		UserID:         string(e.UserID),
		Username:       e.Username,
		Score:          e.Score,
		LevelReached:   e.LevelReached,
		CoinsCollected: e.CoinsCollected,
		GameDuration:   e.GameDuration,
		CreatedAt:      e.CreatedAt,
	}
}

// ScoreEntriesFromModel converts a slice of ledger entries
func ScoreEntriesFromModel(entries []*model.ScoreEntry) []ScoreEntry {
	result := make([]ScoreEntry, len(entries))
	for i, e := range entries {
		result[i] = ScoreEntryFromModel(e)
	}
	return result
}

// Checkpoint is the position/level bookmark within a checkpoint
type Checkpoint struct {
	Level int    `json:"level"`
	Zone  string `json:"zone,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// Progress represents a progress checkpoint in API responses
type Progress struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	CurrentLevel   int        `json:"current_level"`
	LivesRemaining int        `json:"lives_remaining"`
	Score          int        `json:"score"`
	Coins          int        `json:"coins"`
	PowerUps       []string   `json:"power_ups"`
	LastCheckpoint Checkpoint `json:"last_checkpoint"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ProgressFromModel converts a model.ProgressCheckpoint
func ProgressFromModel(cp *model.ProgressCheckpoint) Progress {
	powerUps := make([]string, len(cp.PowerUps))
	for i, p := range cp.PowerUps {
		powerUps[i] = string(p)
	}

	return Progress{
		ID:             string(cp.ID),
		UserID:         string(cp.UserID),
		CurrentLevel:   cp.CurrentLevel,
		LivesRemaining: cp.LivesRemaining,
		Score:          cp.Score,
		Coins:          cp.Coins,
		PowerUps:       powerUps,
		LastCheckpoint: Checkpoint{
			Level: cp.LastCheckpoint.Level,
			Zone:  cp.LastCheckpoint.Zone,
			X:     cp.LastCheckpoint.X,
			Y:     cp.LastCheckpoint.Y,
		},
		UpdatedAt: cp.UpdatedAt,
	}
}

// MostActivePlayer identifies the player with the most submissions
type MostActivePlayer struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	GamesPlayed int    `json:"games_played"`
}

// GlobalStats is the response for the global statistics endpoint
type GlobalStats struct {
	TotalUsers       int               `json:"total_users"`
	TotalGames       int               `json:"total_games"`
	HighestScore     int               `json:"highest_score"`
	MostActivePlayer *MostActivePlayer `json:"most_active_user"`
}

// GlobalStatsFromModel converts a model.GlobalStats
func GlobalStatsFromModel(s *model.GlobalStats) GlobalStats {
	result := GlobalStats{
		TotalUsers:   s.TotalUsers,
		TotalGames:   s.TotalGamesPlayed,
		HighestScore: s.HighestScore,
	}
	if s.MostActivePlayer != nil {
		result.MostActivePlayer = &MostActivePlayer{
			UserID:      string(s.MostActivePlayer.UserID),
			Username:    s.MostActivePlayer.Username,
			GamesPlayed: s.MostActivePlayer.GamesPlayed,
		}
	}
	return result
}

// Message is a simple confirmation response
type Message struct {
	Message string `json:"message"`
}
