package service

import (
	"context"
	"time"

	"github.com/homevista/homevista-backend/internal/domain"
	"github.com/homevista/homevista-backend/internal/repository"
	"github.com/homevista/homevista-backend/pkg/events"
	"github.com/homevista/homevista-backend/pkg/logger"
)

type DashboardSummary struct {
	TotalUsers         int               `json:"total_users"`
	TotalProperties    int               `json:"total_properties"`
	TotalPropertyValue float64           `json:"total_property_value"`
	BannedUsersCount   int               `json:"banned_users_count"`
	Properties         []domain.Property `json:"properties"`
}

type AdminService interface {
	Dashboard(ctx context.Context) *DashboardSummary
	// ListUsers returns each registered user with a "banned" flag attached.
	ListUsers(ctx context.Context) []domain.User
	Ban(ctx context.Context, email string) error
	Unban(ctx context.Context, email string) error
	BannedEmails(ctx context.Context) []string
}

type adminService struct {
	properties repository.PropertyRepository
	users      repository.UserRepository
	bans       repository.BanRepository
	bus        events.Publisher
}

func NewAdminService(
	properties repository.PropertyRepository,
	users repository.UserRepository,
	bans repository.BanRepository,
	bus events.Publisher,
) AdminService {
	return &adminService{
		properties: properties,
		users:      users,
		bans:       bans,
		bus:        bus,
	}
}

func (s *adminService) Dashboard(ctx context.Context) *DashboardSummary {
	properties := s.properties.List("")

	var totalValue float64
	for _, p := range properties {
		totalValue += p.PriceValue()
	}

	return &DashboardSummary{
		TotalUsers:         s.users.Len(),
		TotalProperties:    len(properties),
		TotalPropertyValue: totalValue,
		BannedUsersCount:   s.bans.Len(),
		Properties:         properties,
	}
}

func (s *adminService) ListUsers(ctx context.Context) []domain.User {
	users := s.users.All()
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		annotated := make(domain.User, len(u)+1)
		for k, v := range u {
			annotated[k] = v
		}
		annotated["banned"] = s.bans.IsBanned(u.Email())
		out = append(out, annotated)
	}
	return out
}

func (s *adminService) Ban(ctx context.Context, email string) error {
	if err := s.bans.Ban(email); err != nil {
		return err
	}

	event := events.UserBanStatusEvent{Email: email, ChangedAt: time.Now()}
	if err := s.bus.Publish(ctx, events.UserBanned, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish user banned event", "error", err, "email", email)
	}
	return nil
}

func (s *adminService) Unban(ctx context.Context, email string) error {
	if err := s.bans.Unban(email); err != nil {
		return err
	}

	event := events.UserBanStatusEvent{Email: email, ChangedAt: time.Now()}
	if err := s.bus.Publish(ctx, events.UserUnbanned, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish user unbanned event", "error", err, "email", email)
	}
	return nil
}

func (s *adminService) BannedEmails(ctx context.Context) []string {
	return s.bans.List()
}
