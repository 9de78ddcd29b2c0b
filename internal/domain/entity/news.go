package entity

import (
	"time"

	"github.com/google/uuid"
)

// NewsPost is a published announcement on the corporate site. Slug is the
// primary-language route segment; SlugJa is the romanized route segment for
// the Japanese variant. Both are derived server-side from the titles.
type NewsPost struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	TitleJa     string     `json:"titleJa"`
	Slug        string     `json:"slug"`
	SlugJa      string     `json:"slugJa"`
	Summary     string     `json:"summary"`
	Body        string     `json:"body"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
