package models

import (
	"time"
)

// Comment represents a comment on a post. Comments are created approved;
// there is no moderation workflow and no update operation.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PostID     uint      `gorm:"not null;index" json:"post_id"`
	Post       Post      `gorm:"foreignKey:PostID" json:"-"`
	AuthorID   uint      `gorm:"not null;index" json:"-"`
	Author     User      `gorm:"foreignKey:AuthorID" json:"author"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsApproved bool      `gorm:"default:true" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}
