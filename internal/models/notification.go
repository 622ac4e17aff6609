package models

import (
	"time"
)

// Notification records "someone replied to your question" for a recipient.
// Question title and replier name are snapshots so the listing needs no
// joins; the question reference is weak and the rows are hard-deleted when
// the source question goes away.
type Notification struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	QuestionID    uint      `gorm:"not null;index" json:"question_id"`
	QuestionTitle string    `gorm:"not null" json:"question_title"`
	AuthorID      *uint     `json:"author_id"`
	AuthorName    string    `gorm:"not null" json:"author_name"`
	Read          bool      `gorm:"default:false" json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}
