package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/homevista/homevista-backend/internal/domain"
	"github.com/homevista/homevista-backend/internal/repository"
	"github.com/homevista/homevista-backend/internal/service"
	"github.com/homevista/homevista-backend/pkg/events"
)

type chatFixture struct {
	properties repository.PropertyRepository
	users      repository.UserRepository
	chats      repository.ChatRepository
	svc        service.ChatService
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	f := &chatFixture{
		properties: repository.NewPropertyRepository(repository.NewSellerDirectory(repository.DefaultSellers())),
		users:      repository.NewUserRepository(),
		chats:      repository.NewChatRepository(),
	}
	f.svc = service.NewChatService(f.properties, f.users, f.chats, events.NewNopBus())
	return f
}

func (f *chatFixture) seedProperty(t *testing.T) domain.Property {
	t.Helper()
	p, err := f.properties.Insert(domain.Property{
		"title": "Sunset Ridge Villa", "location": "Austin",
		"total_area": 2400, "total_units": 1,
		"bedrooms": 4, "bathrooms": 3, "price": 785000,
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPostMessageForbiddenForUnknownUser(t *testing.T) {
	f := newChatFixture(t)
	p := f.seedProperty(t)

	_, err := f.svc.PostMessage(context.Background(), p.ID(), "stranger@x.com", "hello?")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("post as unknown user: err = %v, want ErrForbidden", err)
	}
	if keys := f.chats.Keys(); len(keys) != 0 {
		t.Errorf("thread keys = %v, no thread should be created on rejection", keys)
	}
}

func TestPostMessageMissingParameters(t *testing.T) {
	f := newChatFixture(t)
	p := f.seedProperty(t)
	f.users.Register(domain.User{"email": "alice@x.com", "username": "alice"})

	if _, err := f.svc.PostMessage(context.Background(), p.ID(), "", "hi"); !errors.Is(err, domain.ErrMissingParameter) {
		t.Errorf("empty email: err = %v, want ErrMissingParameter", err)
	}
	if _, err := f.svc.PostMessage(context.Background(), p.ID(), "alice@x.com", "   "); !errors.Is(err, domain.ErrMissingParameter) {
		t.Errorf("blank message: err = %v, want ErrMissingParameter", err)
	}
}

func TestPostMessageUnknownPropertyNotFound(t *testing.T) {
	f := newChatFixture(t)
	f.users.Register(domain.User{"email": "alice@x.com"})

	if _, err := f.svc.PostMessage(context.Background(), 404, "alice@x.com", "hi"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown property: err = %v, want ErrNotFound", err)
	}
}

func TestMessagesAccumulateAndThreadIsCaseInsensitive(t *testing.T) {
	f := newChatFixture(t)
	p := f.seedProperty(t)
	f.users.Register(domain.User{"email": "Bob@X.com", "username": "bob"})

	if _, err := f.svc.PostMessage(context.Background(), p.ID(), "Bob@X.com", "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.PostMessage(context.Background(), p.ID(), "bob@x.com", "second"); err != nil {
		t.Fatal(err)
	}

	thread, err := f.svc.GetThread(context.Background(), p.ID(), "BOB@x.com")
	if err != nil {
		t.Fatalf("get thread: %v", err)
	}
	if len(thread.Messages) != 2 {
		t.Fatalf("thread length = %d, want both casings in one thread", len(thread.Messages))
	}
	if thread.Messages[0].Message != "first" || thread.Messages[1].Message != "second" {
		t.Errorf("messages out of call order: %v", thread.Messages)
	}
	if thread.Messages[0].SenderEmail != "Bob@X.com" {
		t.Errorf("sender_email = %q, want raw submitted casing", thread.Messages[0].SenderEmail)
	}
}

func TestMessageShape(t *testing.T) {
	f := newChatFixture(t)
	p := f.seedProperty(t)
	f.users.Register(domain.User{"email": "noname@x.com"})

	msgs, err := f.svc.PostMessage(context.Background(), p.ID(), "noname@x.com", "hi there")
	if err != nil {
		t.Fatal(err)
	}
	msg := msgs[0]
	if msg.Sender != "noname" {
		t.Errorf("sender = %q, want email local part when username is absent", msg.Sender)
	}
	ts, err := time.Parse(time.RFC3339, msg.Timestamp)
	if err != nil {
		t.Fatalf("timestamp %q is not RFC3339: %v", msg.Timestamp, err)
	}
	if ts.Location() != time.UTC {
		t.Errorf("timestamp %q not in UTC", msg.Timestamp)
	}
	if msg.Timestamp[len(msg.Timestamp)-1] != 'Z' {
		t.Errorf("timestamp %q lacks literal Z suffix", msg.Timestamp)
	}
}

func TestGetThreadEmptyIsNotAnError(t *testing.T) {
	f := newChatFixture(t)
	p := f.seedProperty(t)
	f.users.Register(domain.User{"email": "alice@x.com"})

	thread, err := f.svc.GetThread(context.Background(), p.ID(), "alice@x.com")
	if err != nil {
		t.Fatalf("get empty thread: %v", err)
	}
	if thread.Messages == nil || len(thread.Messages) != 0 {
		t.Errorf("messages = %v, want empty sequence", thread.Messages)
	}
	if owner, _ := thread.Property.Owner(); thread.Owner.Name == "" || owner.Name != thread.Owner.Name {
		t.Errorf("owner = %+v, want the property's resolved owner", thread.Owner)
	}
}

func TestGetThreadGateOrder(t *testing.T) {
	f := newChatFixture(t)

	if _, err := f.svc.GetThread(context.Background(), 1, ""); !errors.Is(err, domain.ErrMissingParameter) {
		t.Errorf("missing email: err = %v, want ErrMissingParameter", err)
	}
	if _, err := f.svc.GetThread(context.Background(), 1, "ghost@x.com"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("unknown user: err = %v, want ErrForbidden", err)
	}
	f.users.Register(domain.User{"email": "alice@x.com"})
	if _, err := f.svc.GetThread(context.Background(), 1, "alice@x.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown property: err = %v, want ErrNotFound", err)
	}
}

func TestListSessions(t *testing.T) {
	f := newChatFixture(t)
	first := f.seedProperty(t)
	second := f.seedProperty(t)
	f.users.Register(domain.User{"email": "Alice@X.com", "username": "alice"})
	f.users.Register(domain.User{"email": "bob@x.com", "username": "bob"})

	for _, m := range []string{"hello", "still there?"} {
		if _, err := f.svc.PostMessage(context.Background(), first.ID(), "Alice@X.com", m); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.svc.PostMessage(context.Background(), second.ID(), "alice@x.com", "other thread"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.PostMessage(context.Background(), first.ID(), "bob@x.com", "not alice"); err != nil {
		t.Fatal(err)
	}

	sessions, err := f.svc.ListSessions(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("session count = %d, want 2", len(sessions))
	}
	if sessions[0].PropertyID != first.ID() || sessions[1].PropertyID != second.ID() {
		t.Errorf("sessions = %+v, want thread creation order", sessions)
	}
	if sessions[0].LastMessage == nil || sessions[0].LastMessage.Message != "still there?" {
		t.Errorf("last message = %+v, want most recent", sessions[0].LastMessage)
	}
}

func TestListSessionsSkipsDeletedProperty(t *testing.T) {
	f := newChatFixture(t)
	p := f.seedProperty(t)
	f.users.Register(domain.User{"email": "alice@x.com"})

	if _, err := f.svc.PostMessage(context.Background(), p.ID(), "alice@x.com", "hi"); err != nil {
		t.Fatal(err)
	}
	if err := f.properties.Delete(p.ID()); err != nil {
		t.Fatal(err)
	}

	sessions, err := f.svc.ListSessions(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %+v, thread for deleted property should be skipped", sessions)
	}
}

func TestListSessionsEmptyForUserWithNoThreads(t *testing.T) {
	f := newChatFixture(t)
	f.users.Register(domain.User{"email": "alice@x.com"})

	sessions, err := f.svc.ListSessions(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %+v, want empty sequence", sessions)
	}

	if _, err := f.svc.ListSessions(context.Background(), "ghost@x.com"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("unknown user: err = %v, want ErrForbidden", err)
	}
}
