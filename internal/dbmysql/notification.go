package dbmysql

import (
	"encoding/json"
	"time"
)

// Notification is a named, user-scoped event with an opaque JSON
// payload. Name doubles as the de-duplication key: at most one live
// notification per (user, name), the newest payload wins.
type Notification struct {
	ID          uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Name        string    `gorm:"column:name;size:128;not null;index" json:"name"`
	Timestamp   time.Time `gorm:"column:timestamp;index;autoCreateTime" json:"timestamp"`
	PayloadJSON string    `gorm:"column:payload_json;type:text" json:"payload_json"`
}

// Data unmarshals the payload into v.
func (n *Notification) Data(v interface{}) error {
	return json.Unmarshal([]byte(n.PayloadJSON), v)
}
