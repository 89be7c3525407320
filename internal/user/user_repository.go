package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"microblog/internal/dbmysql"
)

type UserRepository interface {
	Create(ctx context.Context, user *dbmysql.User) error
	ByID(ctx context.Context, id uint64) (*dbmysql.User, error)
	ByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	Update(ctx context.Context, user *dbmysql.User) error
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	TouchLastSeen(ctx context.Context, id uint64, at time.Time) error
	SetLastMessageRead(ctx context.Context, id uint64, at time.Time) error
}

var ErrNotFound = errors.New("user not found")

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *dbmysql.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) ByID(ctx context.Context, id uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) ByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *dbmysql.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return nil
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) TouchLastSeen(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("id = ?", id).
		Update("last_seen", at).Error
}

func (r *userRepository) SetLastMessageRead(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("id = ?", id).
		Update("last_message_read_time", at).Error
}
