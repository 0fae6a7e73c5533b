package model

import "time"

// BlogPost represents a blog article. The slug is derived from the title
// (or transliterated from user input) and is unique; ViewsCount only
// ever increases, by one per detail access.
type BlogPost struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"type:varchar(150);not null"`
	Slug        string    `json:"slug" gorm:"type:varchar(150);uniqueIndex;not null"`
	Content     string    `json:"content" gorm:"type:text"`
	Preview     string    `json:"preview,omitempty" gorm:"type:varchar(255)"`
	IsPublished bool      `json:"is_published" gorm:"default:true"`
	ViewsCount  int       `json:"views_count" gorm:"default:0;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// ViewsNotifyThreshold is the exact views count at which the operator
// notification fires. The check is equality, not >=, so a reset counter
// fires again only when it passes through this value.
const ViewsNotifyThreshold = 100
