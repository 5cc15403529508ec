package request

// RegisterRequest is the request body for creating a user account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SubmitScoreRequest is the request body for submitting a score
type SubmitScoreRequest struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	Score          int    `json:"score"`
	LevelReached   int    `json:"level_reached"`
	CoinsCollected int    `json:"coins_collected"`
	GameDuration   int    `json:"game_duration"`
}

// CheckpointPayload is the position/level bookmark in a progress save
type CheckpointPayload struct {
	Level int    `json:"level"`
	Zone  string `json:"zone,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// SaveProgressRequest is the request body for saving a checkpoint
type SaveProgressRequest struct {
	UserID         string            `json:"user_id"`
	CurrentLevel   int               `json:"current_level"`
	LivesRemaining int               `json:"lives_remaining"`
	Score          int               `json:"score"`
	Coins          int               `json:"coins"`
	PowerUps       []string          `json:"power_ups"`
	LastCheckpoint CheckpointPayload `json:"last_checkpoint"`
}
