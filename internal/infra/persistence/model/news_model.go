package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsModel mirrors the 'news_posts' table. Both slug columns are unique so
// the store is the last word on slug collisions.
type NewsModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	TitleJa     string    `gorm:"type:varchar(255)"`
	Slug        string    `gorm:"type:varchar(255);unique;not null"`
	SlugJa      string    `gorm:"type:varchar(255);uniqueIndex:idx_news_slug_ja,where:slug_ja <> ''"`
	Summary     string    `gorm:"type:text"`
	Body        string    `gorm:"type:text"`
	Published   bool      `gorm:"not null;default:false"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsModel) TableName() string {
	return "news_posts"
}
