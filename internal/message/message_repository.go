package message

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"microblog/internal/common"
	"microblog/internal/dbmysql"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *dbmysql.Message) error
	// Received lists messages addressed to userID, newest first.
	Received(ctx context.Context, userID uint64, page, perPage int) ([]dbmysql.Message, int64, error)
	// Sent lists messages authored by userID, newest first.
	Sent(ctx context.Context, userID uint64, page, perPage int) ([]dbmysql.Message, int64, error)
	// UnreadCount counts messages for userID newer than since.
	UnreadCount(ctx context.Context, userID uint64, since time.Time) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *dbmysql.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func (r *messageRepository) Received(ctx context.Context, userID uint64, page, perPage int) ([]dbmysql.Message, int64, error) {
	return r.list(ctx, "recipient_id = ?", userID, page, perPage)
}

func (r *messageRepository) Sent(ctx context.Context, userID uint64, page, perPage int) ([]dbmysql.Message, int64, error) {
	return r.list(ctx, "sender_id = ?", userID, page, perPage)
}

func (r *messageRepository) list(ctx context.Context, cond string, userID uint64, page, perPage int) ([]dbmysql.Message, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where(cond, userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	var messages []dbmysql.Message
	err := q.Order("timestamp DESC, id DESC").
		Offset(common.PageOffset(page, perPage)).
		Limit(perPage).
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list messages: %w", err)
	}
	return messages, total, nil
}

func (r *messageRepository) UnreadCount(ctx context.Context, userID uint64, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("recipient_id = ? AND timestamp > ?", userID, since).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return total, nil
}
