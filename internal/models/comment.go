package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxCommentLength is the maximum number of characters in a comment.
const MaxCommentLength = 120

// Comment is a short remark on a post. Comments are deleted together with
// their post and always listed in ascending creation order.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"size:120;not null" json:"text"`
	PostID    uint           `gorm:"not null;index" json:"post_id"`
	Post      *Post          `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	AuthorID  uint           `gorm:"not null" json:"author_id"`
	Author    *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
