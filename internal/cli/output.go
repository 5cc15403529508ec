package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case ScoreEntry:
		o.printScoreEntry(v)
	case ScoreList:
		o.printScoreList(v)
	case Progress:
		o.printProgress(v)
	case GlobalStats:
		o.printGlobalStats(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email,omitempty"`
	HighScore       int       `json:"high_score"`
	TotalCoins      int       `json:"total_coins"`
	LevelsCompleted int       `json:"levels_completed"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// ScoreEntry response type
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

// ScoreList wraps a list of entries for text rendering
type ScoreList []ScoreEntry

// Checkpoint response type
type Checkpoint struct {
	Level int    `json:"level"`
	Zone  string `json:"zone,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// Progress response type
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

// MostActivePlayer response type
type MostActivePlayer struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	GamesPlayed int    `json:"games_played"`
}

// GlobalStats response type
type GlobalStats struct {
	TotalUsers       int               `json:"total_users"`
	TotalGames       int               `json:"total_games"`
	HighestScore     int               `json:"highest_score"`
	MostActivePlayer *MostActivePlayer `json:"most_active_user"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	if u.Email != "" {
		fmt.Printf("Email: %s\n", u.Email)
	}
	fmt.Printf("High Score: %d\n", u.HighScore)
	fmt.Printf("Total Coins: %d\n", u.TotalCoins)
	fmt.Printf("Levels Completed: %d\n", u.LevelsCompleted)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printScoreEntry(e ScoreEntry) {
	fmt.Printf("Score: %d by %s (level %d, %d coins, %ds)\n",
		e.Score, e.Username, e.LevelReached, e.CoinsCollected, e.GameDuration)
	fmt.Printf("Entry: %s\n", e.ID)
}

func (o *Output) printScoreList(entries ScoreList) {
	if len(entries) == 0 {
		fmt.Println("No scores yet")
		return
	}
	for i, e := range entries {
		fmt.Printf("%2d. %-20s %8d  (level %d, %d coins)\n",
			i+1, e.Username, e.Score, e.LevelReached, e.CoinsCollected)
	}
}

func (o *Output) printProgress(p Progress) {
	fmt.Printf("Progress for %s\n", p.UserID)
	fmt.Printf("Level: %d  Lives: %d  Score: %d  Coins: %d\n",
		p.CurrentLevel, p.LivesRemaining, p.Score, p.Coins)
	if len(p.PowerUps) > 0 {
		fmt.Printf("Power-ups: %s\n", strings.Join(p.PowerUps, ", "))
	}
	fmt.Printf("Checkpoint: level %d zone %q (%d, %d)\n",
		p.LastCheckpoint.Level, p.LastCheckpoint.Zone, p.LastCheckpoint.X, p.LastCheckpoint.Y)
	fmt.Printf("Updated: %s\n", p.UpdatedAt.Format(time.RFC3339))
}

func (o *Output) printGlobalStats(s GlobalStats) {
	fmt.Printf("Total Users: %d\n", s.TotalUsers)
	fmt.Printf("Total Games: %d\n", s.TotalGames)
	fmt.Printf("Highest Score: %d\n", s.HighestScore)
	if s.MostActivePlayer != nil {
		fmt.Printf("Most Active: %s (%d games)\n",
			s.MostActivePlayer.Username, s.MostActivePlayer.GamesPlayed)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
