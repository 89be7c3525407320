package message

import (
	"context"
	"log"
	"time"

	"microblog/internal/common"
	"microblog/internal/config"
	"microblog/internal/dbmysql"
)

// unreadCountName keys the per-user unread badge notification; each
// refresh replaces the previous value.
const unreadCountName = "unread_message_count"

// UserStore is the slice of the user repository the message flow
// needs.
type UserStore interface {
	ByID(ctx context.Context, id uint64) (*dbmysql.User, error)
	ByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	SetLastMessageRead(ctx context.Context, id uint64, at time.Time) error
}

// Notifier publishes named notifications to users.
type Notifier interface {
	Add(ctx context.Context, userID uint64, name string, payload interface{}) (*dbmysql.Notification, error)
}

type MessageService interface {
	// Send delivers a private message and refreshes the recipient's
	// unread-count notification.
	Send(ctx context.Context, senderID uint64, recipient, body string) (*dbmysql.Message, error)
	Inbox(ctx context.Context, userID uint64, page int) (common.Page[dbmysql.Message], error)
	Sent(ctx context.Context, userID uint64, page int) (common.Page[dbmysql.Message], error)
	// UnreadCount counts messages received after the user's last-read
	// marker.
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	// MarkRead moves the last-read marker to now and zeroes the
	// unread-count notification.
	MarkRead(ctx context.Context, userID uint64) error
}

type messageService struct {
	messages MessageRepository
	users    UserStore
	notifier Notifier
	perPage  int
}

func NewMessageService(messages MessageRepository, users UserStore, notifier Notifier, cfg *config.Config) MessageService {
	return &messageService{
		messages: messages,
		users:    users,
		notifier: notifier,
		perPage:  cfg.App.PostsPerPage,
	}
}

func (s *messageService) Send(ctx context.Context, senderID uint64, recipient, body string) (*dbmysql.Message, error) {
	if err := common.ValidateMessageBody(body); err != nil {
		return nil, err
	}

	target, err := s.users.ByUsername(ctx, recipient)
	if err != nil {
		return nil, err
	}

	msg := &dbmysql.Message{
		SenderID:    senderID,
		RecipientID: target.ID,
		Body:        body,
		Timestamp:   time.Now(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	// the message is delivered at this point; a failed badge refresh
	// must not read as a failed send, the next send or mark-read
	// corrects the count
	unread, err := s.messages.UnreadCount(ctx, target.ID, lastRead(target))
	if err != nil {
		log.Printf("message: unread count for user %d failed: %v", target.ID, err)
		return msg, nil
	}
	if _, err := s.notifier.Add(ctx, target.ID, unreadCountName, unread); err != nil {
		log.Printf("message: unread notification for user %d failed: %v", target.ID, err)
	}
	return msg, nil
}

func (s *messageService) Inbox(ctx context.Context, userID uint64, page int) (common.Page[dbmysql.Message], error) {
	messages, total, err := s.messages.Received(ctx, userID, page, s.perPage)
	if err != nil {
		return common.Page[dbmysql.Message]{}, err
	}
	return common.NewPage(messages, page, s.perPage, total), nil
}

func (s *messageService) Sent(ctx context.Context, userID uint64, page int) (common.Page[dbmysql.Message], error) {
	messages, total, err := s.messages.Sent(ctx, userID, page, s.perPage)
	if err != nil {
		return common.Page[dbmysql.Message]{}, err
	}
	return common.NewPage(messages, page, s.perPage, total), nil
}

func (s *messageService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return s.messages.UnreadCount(ctx, userID, lastRead(u))
}

func (s *messageService) MarkRead(ctx context.Context, userID uint64) error {
	if err := s.users.SetLastMessageRead(ctx, userID, time.Now()); err != nil {
		return err
	}
	_, err := s.notifier.Add(ctx, userID, unreadCountName, 0)
	return err
}

// lastRead returns the user's last-read marker, falling back to the
// epoch for users who never opened their inbox.
func lastRead(u *dbmysql.User) time.Time {
	if u.LastMessageReadTime == nil {
		return time.Unix(0, 0)
	}
	return *u.LastMessageReadTime
}
