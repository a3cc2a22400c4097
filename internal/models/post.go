package models

import (
	"time"
)

// Post status values.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Post represents a blog post in the Inkwell application.
//
// Category is a weak reference: deleting a category clears CategoryID on its
// posts. Comments are owned: deleting a post deletes them.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Slug       string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	AuthorID   uint      `gorm:"not null;index" json:"-"`
	Author     User      `gorm:"foreignKey:AuthorID" json:"author"`
	CategoryID *uint     `gorm:"index" json:"-"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category"`
	Content    string    `gorm:"type:text;not null" json:"content,omitempty"`
	Excerpt    string    `gorm:"size:300" json:"excerpt"`
	Status     string    `gorm:"size:30;default:draft" json:"status"`
	ViewsCount int       `gorm:"default:0" json:"views_count"`
	// CommentsCount is computed at query time from the live comment rows;
	// the column itself is never written.
	CommentsCount int       `gorm:"->" json:"comments_count"`
	Comments      []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
