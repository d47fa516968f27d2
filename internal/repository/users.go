package repository

import (
	"fmt"
	"strings"
	"sync"

	"github.com/homevista/homevista-backend/internal/domain"
)

type UserRepository interface {
	// Register appends without a uniqueness check; duplicate emails are
	// accepted and lookups return the first match.
	Register(data domain.User) domain.User
	// FindByEmail matches the stored email exactly (case-sensitive).
	FindByEmail(email string) (domain.User, error)
	// FindByEmailFold matches case-insensitively. Chat membership checks use
	// this so thread access follows the same casing policy as thread keys.
	FindByEmailFold(email string) (domain.User, error)
	// Authenticate compares email and password exactly against each record
	// and returns the first match.
	Authenticate(email, password string) (domain.User, error)
	All() []domain.User
	Len() int
}

type userRepository struct {
	mu    sync.Mutex
	users []domain.User
}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Register(data domain.User) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, data)
	return data
}

func (r *userRepository) FindByEmail(email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (r *userRepository) FindByEmailFold(email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email(), email) {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (r *userRepository) Authenticate(email, password string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email() == email && u.Password() == password {
			return u, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (r *userRepository) All() []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *userRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
