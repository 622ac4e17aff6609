package models

import (
	"time"
)

// Reply is a response embedded in a question's reply sequence. Replies are
// stored as child rows so appends are plain inserts and deletion can target a
// single (question_id, id) pair; the aggregate shape is rebuilt by preloading.
type Reply struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Author     string    `gorm:"default:'Anônimo'" json:"author"`
	AuthorID   *uint     `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}
