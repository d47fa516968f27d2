package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/homevista/homevista-backend/internal/domain"
	"github.com/homevista/homevista-backend/internal/repository"
	"github.com/homevista/homevista-backend/internal/service"
	"github.com/homevista/homevista-backend/pkg/events"
)

type adminFixture struct {
	properties repository.PropertyRepository
	users      repository.UserRepository
	bans       repository.BanRepository
	svc        service.AdminService
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		properties: repository.NewPropertyRepository(repository.NewSellerDirectory(repository.DefaultSellers())),
		users:      repository.NewUserRepository(),
		bans:       repository.NewBanRepository(),
	}
	f.svc = service.NewAdminService(f.properties, f.users, f.bans, events.NewNopBus())
	return f
}

func TestDashboardSummary(t *testing.T) {
	f := newAdminFixture()
	f.properties.ReplaceAll([]domain.Property{
		{"title": "a", "location": "Austin", "price": 100000},
		{"title": "b", "location": "Denver", "price": "250000"},
		{"title": "c", "location": "Seattle", "price": "not a number"},
	})
	f.users.Register(domain.User{"email": "alice@x.com"})
	f.users.Register(domain.User{"email": "bob@x.com"})
	if err := f.bans.Ban("bob@x.com"); err != nil {
		t.Fatal(err)
	}

	summary := f.svc.Dashboard(context.Background())
	if summary.TotalUsers != 2 {
		t.Errorf("total_users = %d, want 2", summary.TotalUsers)
	}
	if summary.TotalProperties != 3 {
		t.Errorf("total_properties = %d, want 3", summary.TotalProperties)
	}
	// Non-numeric prices contribute 0.
	if summary.TotalPropertyValue != 350000 {
		t.Errorf("total_property_value = %v, want 350000", summary.TotalPropertyValue)
	}
	if summary.BannedUsersCount != 1 {
		t.Errorf("banned_users_count = %d, want 1", summary.BannedUsersCount)
	}
	if len(summary.Properties) != 3 {
		t.Errorf("properties in summary = %d, want all", len(summary.Properties))
	}
}

func TestListUsersCarriesBanStatus(t *testing.T) {
	f := newAdminFixture()
	f.users.Register(domain.User{"email": "alice@x.com", "tier": "gold"})
	f.users.Register(domain.User{"email": "bob@x.com"})
	if err := f.svc.Ban(context.Background(), "bob@x.com"); err != nil {
		t.Fatal(err)
	}

	users := f.svc.ListUsers(context.Background())
	if len(users) != 2 {
		t.Fatalf("user count = %d, want 2", len(users))
	}
	if users[0]["banned"] != false || users[1]["banned"] != true {
		t.Errorf("ban flags = %v/%v, want false/true", users[0]["banned"], users[1]["banned"])
	}
	if users[0]["tier"] != "gold" {
		t.Errorf("free-form field dropped from listing: %v", users[0])
	}
}

func TestBanConflictDoesNotChangeState(t *testing.T) {
	f := newAdminFixture()

	if err := f.svc.Ban(context.Background(), "alice@x.com"); err != nil {
		t.Fatalf("first ban: %v", err)
	}
	if err := f.svc.Ban(context.Background(), "alice@x.com"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("second ban: err = %v, want ErrConflict", err)
	}
	if got := f.svc.BannedEmails(context.Background()); len(got) != 1 {
		t.Errorf("banned emails = %v, want single entry", got)
	}
}
