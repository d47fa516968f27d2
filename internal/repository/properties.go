package repository

import (
	"fmt"
	"strings"
	"sync"

	"github.com/homevista/homevista-backend/internal/domain"
)

type PropertyRepository interface {
	// List returns properties in insertion/load order. A non-empty location
	// filters by exact, case-sensitive equality.
	List(location string) []domain.Property
	Get(id int64) (domain.Property, error)
	Insert(data domain.Property) (domain.Property, error)
	Update(id int64, patch map[string]any) (domain.Property, error)
	Delete(id int64) error
	// ReplaceAll swaps in a freshly loaded set of records, repairing each
	// record's owner by its load position.
	ReplaceAll(records []domain.Property)
	// ReloadIfEmpty invokes load and replaces the store only when it holds
	// no properties. This is the explicit self-heal hook; it is never
	// triggered implicitly by reads.
	ReloadIfEmpty(load func() ([]domain.Property, error)) error
	Len() int
}

type propertyRepository struct {
	mu      sync.Mutex
	items   []domain.Property
	lastID  int64
	sellers *SellerDirectory
}

func NewPropertyRepository(sellers *SellerDirectory) PropertyRepository {
	return &propertyRepository{sellers: sellers}
}

func (r *propertyRepository) List(location string) []domain.Property {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Property, 0, len(r.items))
	for _, p := range r.items {
		if location != "" && p.Location() != location {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *propertyRepository) Get(id int64) (domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p := r.find(id); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("property %d: %w", id, domain.ErrNotFound)
}

func (r *propertyRepository) Insert(data domain.Property) (domain.Property, error) {
	for _, field := range domain.RequiredPropertyFields {
		if _, ok := data[field]; !ok {
			return nil, fmt.Errorf("%w: missing required field %q", domain.ErrValidation, field)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Ids are a high-water mark, not max(existing)+1: deleting the top
	// property must not cause its id to be reissued.
	r.lastID++
	data.SetID(r.lastID)
	data.SetOwner(r.resolveOwner(data["owner"], len(r.items), domain.OwnerKindUser))
	r.items = append(r.items, data)
	return data, nil
}

func (r *propertyRepository) Update(id int64, patch map[string]any) (domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(id)
	if p == nil {
		return nil, fmt.Errorf("property %d: %w", id, domain.ErrNotFound)
	}
	for k, v := range patch {
		if k == "id" {
			// Ids are unique and immutable; a patch cannot reassign one.
			continue
		}
		p[k] = v
	}
	return p, nil
}

func (r *propertyRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.items {
		if p.ID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("property %d: %w", id, domain.ErrNotFound)
}

func (r *propertyRepository) ReplaceAll(records []domain.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceAll(records)
}

func (r *propertyRepository) ReloadIfEmpty(load func() ([]domain.Property, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) > 0 {
		return nil
	}
	records, err := load()
	if err != nil {
		return err
	}
	r.replaceAll(records)
	return nil
}

func (r *propertyRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// replaceAll must be called with the lock held.
func (r *propertyRepository) replaceAll(records []domain.Property) {
	r.items = make([]domain.Property, 0, len(records))
	r.lastID = 0
	for idx, rec := range records {
		id := rec.ID()
		if id == 0 {
			id = int64(idx) + 1
		}
		rec.SetID(id)
		if id > r.lastID {
			r.lastID = id
		}
		rec.SetOwner(r.resolveOwner(rec["owner"], idx, domain.OwnerKindBot))
		r.items = append(r.items, rec)
	}
}

func (r *propertyRepository) find(id int64) domain.Property {
	for _, p := range r.items {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// resolveOwner keeps a supplied owner when it carries a non-empty name,
// defaulting a missing kind to missingKind; otherwise it falls back to the
// seller directory entry for the given position.
func (r *propertyRepository) resolveOwner(value any, index int, missingKind string) domain.Owner {
	if o, ok := domain.OwnerFromValue(value); ok && strings.TrimSpace(o.Name) != "" {
		if o.Kind == "" {
			o.Kind = missingKind
		}
		return o
	}
	return r.sellers.FallbackFor(index).AsOwner()
}
