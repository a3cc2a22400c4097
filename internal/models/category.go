package models

import (
	"time"
)

// Category groups posts. Its slug is always the canonical slugification of
// the current name and is regenerated on every save.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Slug        string    `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
