package service

import (
	"context"
	"time"

	"github.com/homevista/homevista-backend/internal/domain"
	"github.com/homevista/homevista-backend/internal/repository"
	"github.com/homevista/homevista-backend/pkg/events"
	"github.com/homevista/homevista-backend/pkg/logger"
)

const (
	recommendLimit = 3

	// Placeholder prediction constants, kept as literal stand-ins for the
	// absent ML model.
	predictBasePrice       = 50000
	predictPricePerFeature = 1000
)

type PropertyService interface {
	List(ctx context.Context, location string) []domain.Property
	Get(ctx context.Context, id int64) (domain.Property, error)
	Create(ctx context.Context, data domain.Property) (domain.Property, error)
	Update(ctx context.Context, id int64, patch map[string]any) (domain.Property, error)
	Delete(ctx context.Context, id int64) error
	// ReloadIfEmpty re-runs the startup seed load when the store is empty.
	ReloadIfEmpty(ctx context.Context) error
	// Recommend returns the placeholder recommendation set: the first few
	// stored properties, regardless of input.
	Recommend(ctx context.Context, input map[string]any) []domain.Property
	// PredictPrice returns the placeholder prediction derived from the
	// number of submitted features.
	PredictPrice(ctx context.Context, input map[string]any) int
}

type propertyService struct {
	properties repository.PropertyRepository
	bus        events.Publisher
	seedPath   string
}

func NewPropertyService(properties repository.PropertyRepository, bus events.Publisher, seedPath string) PropertyService {
	return &propertyService{
		properties: properties,
		bus:        bus,
		seedPath:   seedPath,
	}
}

func (s *propertyService) List(ctx context.Context, location string) []domain.Property {
	return s.properties.List(location)
}

func (s *propertyService) Get(ctx context.Context, id int64) (domain.Property, error) {
	return s.properties.Get(id)
}

func (s *propertyService) Create(ctx context.Context, data domain.Property) (domain.Property, error) {
	property, err := s.properties.Insert(data)
	if err != nil {
		return nil, err
	}

	owner, _ := property.Owner()
	event := events.PropertyCreatedEvent{
		PropertyID: property.ID(),
		Title:      property.Title(),
		Location:   property.Location(),
		OwnerName:  owner.Name,
		CreatedAt:  time.Now(),
	}
	if err := s.bus.Publish(ctx, events.PropertyCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish property created event", "error", err, "property_id", property.ID())
	}

	return property, nil
}

func (s *propertyService) Update(ctx context.Context, id int64, patch map[string]any) (domain.Property, error) {
	property, err := s.properties.Update(id, patch)
	if err != nil {
		return nil, err
	}

	changes := make([]string, 0, len(patch))
	for k := range patch {
		changes = append(changes, k)
	}
	event := events.PropertyUpdatedEvent{
		PropertyID: id,
		Changes:    changes,
		UpdatedAt:  time.Now(),
	}
	if err := s.bus.Publish(ctx, events.PropertyUpdated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish property updated event", "error", err, "property_id", id)
	}

	return property, nil
}

func (s *propertyService) Delete(ctx context.Context, id int64) error {
	if err := s.properties.Delete(id); err != nil {
		return err
	}

	event := events.PropertyDeletedEvent{
		PropertyID: id,
		DeletedAt:  time.Now(),
	}
	if err := s.bus.Publish(ctx, events.PropertyDeleted, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish property deleted event", "error", err, "property_id", id)
	}

	return nil
}

func (s *propertyService) ReloadIfEmpty(ctx context.Context) error {
	return s.properties.ReloadIfEmpty(func() ([]domain.Property, error) {
		return repository.LoadSeedFile(s.seedPath)
	})
}

func (s *propertyService) Recommend(ctx context.Context, input map[string]any) []domain.Property {
	all := s.properties.List("")
	if len(all) > recommendLimit {
		all = all[:recommendLimit]
	}
	return all
}

func (s *propertyService) PredictPrice(ctx context.Context, input map[string]any) int {
	features, _ := input["features"].([]any)
	return predictBasePrice + len(features)*predictPricePerFeature
}
