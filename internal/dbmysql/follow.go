package dbmysql

import (
	"time"
)

// Follow is one directed edge of the social graph. The composite
// unique index guarantees at most one edge per ordered pair.
type Follow struct {
	ID         uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;not null;index:idx_follower_followed,unique" json:"follower_id"`
	FollowedID uint64    `gorm:"column:followed_id;not null;index:idx_follower_followed,unique" json:"followed_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
