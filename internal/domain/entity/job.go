package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobPosting is an open position listed on the recruitment pages.
type JobPosting struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	TitleJa        string    `json:"titleJa"`
	Slug           string    `json:"slug"`
	SlugJa         string    `json:"slugJa"`
	Department     string    `json:"department"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employmentType"`
	Description    string    `json:"description"`
	Open           bool      `json:"open"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
