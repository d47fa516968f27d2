package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/homevista/homevista-backend/internal/domain"
	"github.com/homevista/homevista-backend/internal/repository"
	"github.com/homevista/homevista-backend/pkg/events"
	"github.com/homevista/homevista-backend/pkg/logger"
)

type ChatService interface {
	GetThread(ctx context.Context, propertyID int64, email string) (*domain.ChatThread, error)
	PostMessage(ctx context.Context, propertyID int64, email, text string) ([]domain.ChatMessage, error)
	ListSessions(ctx context.Context, email string) ([]domain.ChatSession, error)
}

type chatService struct {
	properties repository.PropertyRepository
	users      repository.UserRepository
	chats      repository.ChatRepository
	bus        events.Publisher
	now        func() time.Time
}

func NewChatService(
	properties repository.PropertyRepository,
	users repository.UserRepository,
	chats repository.ChatRepository,
	bus events.Publisher,
) ChatService {
	return &chatService{
		properties: properties,
		users:      users,
		chats:      chats,
		bus:        bus,
		now:        time.Now,
	}
}

func (s *chatService) GetThread(ctx context.Context, propertyID int64, email string) (*domain.ChatThread, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrMissingParameter)
	}
	if _, err := s.users.FindByEmailFold(email); err != nil {
		return nil, fmt.Errorf("%w: user %s is not registered", domain.ErrForbidden, email)
	}
	property, err := s.properties.Get(propertyID)
	if err != nil {
		return nil, err
	}

	owner, _ := property.Owner()
	return &domain.ChatThread{
		Messages: s.chats.Messages(propertyID, email),
		Owner:    owner,
		Property: property,
	}, nil
}

func (s *chatService) PostMessage(ctx context.Context, propertyID int64, email, text string) ([]domain.ChatMessage, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrMissingParameter)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrMissingParameter)
	}
	user, err := s.users.FindByEmailFold(email)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s is not registered", domain.ErrForbidden, email)
	}
	if _, err := s.properties.Get(propertyID); err != nil {
		return nil, err
	}

	msg := domain.ChatMessage{
		Sender:      senderName(user, email),
		SenderEmail: email,
		Message:     text,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	}
	msgs := s.chats.Append(propertyID, email, msg)

	event := events.ChatMessagePostedEvent{
		PropertyID:  propertyID,
		SenderEmail: email,
		Sender:      msg.Sender,
		PostedAt:    s.now(),
	}
	if err := s.bus.Publish(ctx, events.ChatMessagePosted, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish chat message event", "error", err, "property_id", propertyID)
	}

	return msgs, nil
}

func (s *chatService) ListSessions(ctx context.Context, email string) ([]domain.ChatSession, error) {
	if _, err := s.users.FindByEmailFold(email); err != nil {
		return nil, fmt.Errorf("%w: user %s is not registered", domain.ErrForbidden, email)
	}

	lowered := strings.ToLower(email)
	sessions := make([]domain.ChatSession, 0)
	for _, key := range s.chats.Keys() {
		idPart, emailPart := domain.SplitThreadKey(key)
		if emailPart != lowered {
			continue
		}
		propertyID, err := strconv.ParseInt(idPart, 10, 64)
		if err != nil {
			continue
		}
		property, err := s.properties.Get(propertyID)
		if err != nil {
			// Thread outlived its property; skip it.
			continue
		}

		var last *domain.ChatMessage
		if msgs := s.chats.Messages(propertyID, emailPart); len(msgs) > 0 {
			last = &msgs[len(msgs)-1]
		}
		sessions = append(sessions, domain.ChatSession{
			PropertyID:  propertyID,
			Property:    property,
			LastMessage: last,
		})
	}
	return sessions, nil
}

// senderName is the user's username when present, otherwise the local part
// of the submitted email.
func senderName(user domain.User, email string) string {
	if name := user.Username(); name != "" {
		return name
	}
	if at := strings.IndexByte(email, '@'); at >= 0 {
		return email[:at]
	}
	return email
}
