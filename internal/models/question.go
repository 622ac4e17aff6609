package models

import (
	"time"
)

// Question is the root aggregate of the forum: a posted "dúvida" owning an
// ordered sequence of replies. Author is a display-name snapshot taken at
// creation time; renaming the user does not rewrite it. AuthorID is nullable
// for legacy records; a question without an owner can never be deleted
// through the API.
type Question struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Tag         string    `json:"tag,omitempty"`
	Author      string    `gorm:"default:'Anônimo'" json:"author"`
	AuthorID    *uint     `gorm:"index" json:"author_id"`
	Replies     []Reply   `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"replies"`
	CreatedAt   time.Time `json:"created_at"`
}
