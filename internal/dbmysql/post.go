package dbmysql

import (
	"time"
)

// PostIndex is the search index name posts are mirrored into.
const PostIndex = "posts"

type Post struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Body      string    `gorm:"column:body;size:280;not null" json:"body"`
	Timestamp time.Time `gorm:"column:timestamp;index;autoCreateTime" json:"timestamp"`
	// Language is a best-effort ISO 639-1 tag detected at submission
	// time, empty when detection is not confident.
	Language string `gorm:"column:language;size:5" json:"language,omitempty"`
}

// Posts satisfy the search.Searchable contract: the body field is the
// only one mirrored into the index.

func (p *Post) SearchIndex() string { return PostIndex }

func (p *Post) SearchID() uint64 { return p.ID }

func (p *Post) SearchFields() map[string]interface{} {
	return map[string]interface{}{"body": p.Body}
}
