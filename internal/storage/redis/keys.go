package redis

import (
	"fmt"

	"arcade/internal/model"
)

// Key prefix for all arcade data
const keyPrefix = "arcade"

// Key generation functions for each entity type

// userKey returns the Redis key for a User's identity record
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// userAggregatesKey returns the Redis key for the HASH holding a user's
// score aggregates (kept outside the identity blob so the fold can run
// as an optimistic transaction on a single key)
func userAggregatesKey(id model.UserID) string {
	return fmt.Sprintf("%s:user_aggr:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// usersIndexKey returns the Redis key for the SET of all user ids
func usersIndexKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// scoreKey returns the Redis key for a ScoreEntry
func scoreKey(id model.ScoreID) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, id)
}

// scoresIndexKey returns the Redis key for the LIST of all score ids in
// insertion order
func scoresIndexKey() string {
	return fmt.Sprintf("%s:idx:scores", keyPrefix)
}

// userScoresIndexKey returns the Redis key for the LIST of a user's
// score ids in insertion order
func userScoresIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:user_scores:%s", keyPrefix, userID)
}

// sessionKey returns the Redis key for a Session, keyed by token
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// progressKey returns the Redis key for a user's ProgressCheckpoint
func progressKey(userID model.UserID) string {
	return fmt.Sprintf("%s:progress:%s", keyPrefix, userID)
}
