package notif

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"microblog/internal/dbmysql"
)

type NotificationRepository interface {
	// Upsert replaces any live notification with the same (user, name)
	// pair so the newest payload is the only one visible.
	Upsert(ctx context.Context, n *dbmysql.Notification) error
	// Since lists a user's notifications newer than the given instant,
	// oldest first, for client-side polling.
	Since(ctx context.Context, userID uint64, since time.Time) ([]dbmysql.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Upsert(ctx context.Context, n *dbmysql.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND name = ?", n.UserID, n.Name).
			Delete(&dbmysql.Notification{}).Error; err != nil {
			return err
		}
		return tx.Create(n).Error
	})
	if err != nil {
		return fmt.Errorf("upsert notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) Since(ctx context.Context, userID uint64, since time.Time) ([]dbmysql.Notification, error) {
	var notifications []dbmysql.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp > ?", userID, since).
		Order("timestamp ASC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}
