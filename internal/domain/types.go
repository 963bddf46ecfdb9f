package domain

import "time"

// UserID is the messaging platform's user identifier rendered as text.
type UserID string

// ChatID addresses the chat a response is sent to.
type ChatID int64

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Timestamp = time.Time

// ChatMessage is one turn of the exchange sent to the inference provider.
type ChatMessage struct {
	Role    Role
	Content string
}

// LogEntry is a free-text message recorded in the session log.
type LogEntry struct {
	Timestamp Timestamp
	Text      string
}

// UserLog groups every entry logged for one user, oldest first.
type UserLog struct {
	UserID  UserID
	Entries []LogEntry
}
