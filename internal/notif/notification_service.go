package notif

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"microblog/internal/dbmysql"
)

type NotificationService interface {
	// Add records a named notification for the user, replacing any
	// previous one with the same name.
	Add(ctx context.Context, userID uint64, name string, payload interface{}) (*dbmysql.Notification, error)
	Since(ctx context.Context, userID uint64, since time.Time) ([]dbmysql.Notification, error)
}

type notificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Add(ctx context.Context, userID uint64, name string, payload interface{}) (*dbmysql.Notification, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode notification payload: %w", err)
	}

	n := &dbmysql.Notification{
		UserID:      userID,
		Name:        name,
		Timestamp:   time.Now(),
		PayloadJSON: string(data),
	}
	if err := s.repo.Upsert(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *notificationService) Since(ctx context.Context, userID uint64, since time.Time) ([]dbmysql.Notification, error) {
	return s.repo.Since(ctx, userID, since)
}
