package model

import "time"

// SessionID uniquely identifies an issued session
type SessionID string

// Session is a bearer token issued on successful login. Expiry is
// advisory: nothing validates ExpiresAt on read, and sessions are never
// revoked.
type Session struct {
	ID        SessionID
	UserID    UserID
	Token     string // opaque "sess_" bearer token
	CreatedAt time.Time
	ExpiresAt time.Time // end of issue day, server-local
	Active    bool
}
