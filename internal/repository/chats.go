package repository

import (
	"sync"

	"github.com/homevista/homevista-backend/internal/domain"
)

// ChatRepository holds append-only message threads keyed by
// "propertyID:lowercase(email)". Threads are created lazily on first append
// and live for the process lifetime.
type ChatRepository interface {
	// Messages returns the thread in append order; an absent thread yields
	// an empty (non-nil) slice.
	Messages(propertyID int64, email string) []domain.ChatMessage
	// Append adds a message, creating the thread if needed, and returns the
	// full updated thread.
	Append(propertyID int64, email string, msg domain.ChatMessage) []domain.ChatMessage
	// Keys returns all thread keys in creation order.
	Keys() []string
}

type chatRepository struct {
	mu      sync.Mutex
	threads map[string][]domain.ChatMessage
	keys    []string
}

func NewChatRepository() ChatRepository {
	return &chatRepository{threads: make(map[string][]domain.ChatMessage)}
}

func (r *chatRepository) Messages(propertyID int64, email string) []domain.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	return copyMessages(r.threads[domain.ThreadKey(propertyID, email)])
}

func (r *chatRepository) Append(propertyID int64, email string, msg domain.ChatMessage) []domain.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.ThreadKey(propertyID, email)
	if _, ok := r.threads[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.threads[key] = append(r.threads[key], msg)
	return copyMessages(r.threads[key])
}

func (r *chatRepository) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func copyMessages(msgs []domain.ChatMessage) []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}
