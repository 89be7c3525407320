package user

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"microblog/internal/dbmysql"
)

// FollowRepository maintains the directed follow edges of the social
// graph. Follow and Unfollow are idempotent; self-follow prevention is
// the service's job, the graph itself does not reject it.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followedID uint64) error
	Unfollow(ctx context.Context, followerID, followedID uint64) error
	IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error)
	FollowerCount(ctx context.Context, userID uint64) (int64, error)
	FollowingCount(ctx context.Context, userID uint64) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow adds the edge if it does not exist yet. The composite unique
// index keeps the pair unique; an existing edge makes this a no-op.
func (r *followRepository) Follow(ctx context.Context, followerID, followedID uint64) error {
	edge := &dbmysql.Follow{FollowerID: followerID, FollowedID: followedID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edge).Error
	if err != nil {
		return fmt.Errorf("follow %d -> %d: %w", followerID, followedID, err)
	}
	return nil
}

// Unfollow removes the edge. Removing a nonexistent edge is a no-op.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followedID uint64) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&dbmysql.Follow{}).Error
	if err != nil {
		return fmt.Errorf("unfollow %d -> %d: %w", followerID, followedID, err)
	}
	return nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) FollowerCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("followed_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) FollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}
