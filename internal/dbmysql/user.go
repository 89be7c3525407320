package dbmysql

import (
	"time"
)

type User struct {
	ID                  uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Username            string     `gorm:"column:username;uniqueIndex;size:64;not null" json:"username"`
	Email               string     `gorm:"column:email;uniqueIndex;size:120;not null" json:"email"`
	PasswordHash        string     `gorm:"column:password_hash;size:255;not null" json:"-"`
	AboutMe             string     `gorm:"column:about_me;size:140" json:"about_me"`
	LastSeen            time.Time  `gorm:"column:last_seen;autoCreateTime" json:"last_seen"`
	LastMessageReadTime *time.Time `gorm:"column:last_message_read_time" json:"-"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
