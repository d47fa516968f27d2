package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/homevista/homevista-backend/internal/domain"
)

// BanRepository stores banned emails with their submitted casing and
// compares case-sensitively. It never touches the user store; banning does
// not cascade.
type BanRepository interface {
	Ban(email string) error
	Unban(email string) error
	IsBanned(email string) bool
	List() []string
	Len() int
}

type banRepository struct {
	mu     sync.Mutex
	banned map[string]struct{}
}

func NewBanRepository() BanRepository {
	return &banRepository{banned: make(map[string]struct{})}
}

func (r *banRepository) Ban(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.banned[email]; ok {
		return fmt.Errorf("%w: %s is already banned", domain.ErrConflict, email)
	}
	r.banned[email] = struct{}{}
	return nil
}

func (r *banRepository) Unban(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.banned[email]; !ok {
		return fmt.Errorf("%w: %s is not banned", domain.ErrConflict, email)
	}
	delete(r.banned, email)
	return nil
}

func (r *banRepository) IsBanned(email string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.banned[email]
	return ok
}

func (r *banRepository) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.banned))
	for email := range r.banned {
		out = append(out, email)
	}
	sort.Strings(out)
	return out
}

func (r *banRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.banned)
}
