package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a blog publication. A post may be scheduled by setting PubDate in
// the future; it stays hidden from everyone but its author until then.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:256;not null" json:"title"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	PubDate     time.Time `gorm:"not null;index" json:"pub_date"`
	ImageURL    string    `json:"image_url"`
	// No column default on purpose: gorm drops zero-valued fields that
	// carry a default tag from the INSERT, which would turn drafts into
	// published posts. Create sites set the flag explicitly.
	IsPublished bool `gorm:"not null" json:"is_published"`

	AuthorID   *uint     `gorm:"index" json:"author_id"`
	Author     *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	LocationID *uint     `json:"location_id"`
	Location   *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`

	// CommentCount is not persisted; computed at query time
	CommentCount int `gorm:"->" json:"comment_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PubliclyVisible reports whether viewers other than the author may see the
// post: it must be published, belong to a published category, and have a
// publication date at or before now. The repository's published scope is the
// SQL rendering of this predicate; keep the two in sync.
func (p *Post) PubliclyVisible(now time.Time) bool {
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	return p.Category != nil && p.Category.IsPublished
}

// AuthoredBy reports whether the given user wrote the post.
func (p *Post) AuthoredBy(userID uint) bool {
	return userID != 0 && p.AuthorID != nil && *p.AuthorID == userID
}
