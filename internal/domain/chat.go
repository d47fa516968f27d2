package domain

import (
	"fmt"
	"strings"
)

// ChatMessage is immutable once appended to a thread.
type ChatMessage struct {
	Sender      string `json:"sender"`
	SenderEmail string `json:"sender_email"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"` // ISO-8601 UTC with a literal Z
}

// ChatThread is the view returned for a (property, participant) pair.
type ChatThread struct {
	Messages []ChatMessage `json:"messages"`
	Owner    Owner         `json:"owner"`
	Property Property      `json:"property"`
}

// ChatSession summarizes one thread a user participates in.
type ChatSession struct {
	PropertyID  int64        `json:"property_id"`
	Property    Property     `json:"property"`
	LastMessage *ChatMessage `json:"last_message"`
}

// ThreadKey derives the composite chat key. The email side is lowercased so
// thread identity is case-insensitive regardless of submitted casing.
func ThreadKey(propertyID int64, email string) string {
	return fmt.Sprintf("%d:%s", propertyID, strings.ToLower(email))
}

// SplitThreadKey is the inverse of ThreadKey. The returned email is already
// lowercase.
func SplitThreadKey(key string) (propertyID string, email string) {
	if idx := strings.IndexByte(key, ':'); idx >= 0 {
		return key[:idx], key[idx+1:]
	}
	return key, ""
}
