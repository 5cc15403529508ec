package model

// MostActivePlayer identifies the user with the most score submissions
type MostActivePlayer struct {
	UserID      UserID
	Username    string // current username, not the ledger snapshot
	GamesPlayed int
}

// GlobalStats holds service-wide counters derived from the identity
// store and the score ledger.
type GlobalStats struct {
	TotalUsers       int
	TotalGamesPlayed int
	HighestScore     int               // 0 when no scores exist
	MostActivePlayer *MostActivePlayer // nil when no scores exist
}
