package dbmysql

import (
	"time"
)

// Message is a private message between two users. There is no per-row
// read flag: read status is derived from the recipient's
// LastMessageReadTime marker.
type Message struct {
	ID          uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	SenderID    uint64    `gorm:"column:sender_id;not null;index" json:"sender_id"`
	RecipientID uint64    `gorm:"column:recipient_id;not null;index" json:"recipient_id"`
	Body        string    `gorm:"column:body;size:280;not null" json:"body"`
	Timestamp   time.Time `gorm:"column:timestamp;index;autoCreateTime" json:"timestamp"`
}
