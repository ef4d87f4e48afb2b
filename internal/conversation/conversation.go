package conversation

import (
	"time"

	"tripmate/internal/trip"
)

// Message roles. The set is closed; anything else is rejected at the HTTP
// boundary before it reaches the store.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one immutable entry in a conversation. Once appended it is
// never edited or reordered.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation owns an append-only message sequence plus the preferences
// accumulated from it so far. Instances are created on first reference to an
// unknown id and live for the process lifetime.
type Conversation struct {
	ID          string           `json:"id"`
	Messages    []Message        `json:"messages"`
	Preferences trip.Preferences `json:"preferences"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Summary is the listing view of a conversation.
type Summary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
}

// NewMessage stamps a message with the current time.
func NewMessage(role, content string) Message {
	return Message{Role: role, Content: content, Timestamp: time.Now().UTC()}
}
