package model

import (
	"time"

	"github.com/google/uuid"
)

// JobModel mirrors the 'job_postings' table.
type JobModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title          string    `gorm:"type:varchar(255);not null"`
	TitleJa        string    `gorm:"type:varchar(255)"`
	Slug           string    `gorm:"type:varchar(255);unique;not null"`
	SlugJa         string    `gorm:"type:varchar(255);uniqueIndex:idx_jobs_slug_ja,where:slug_ja <> ''"`
	Department     string    `gorm:"type:varchar(100)"`
	Location       string    `gorm:"type:varchar(100)"`
	EmploymentType string    `gorm:"type:varchar(50)"`
	Description    string    `gorm:"type:text"`
	Open           bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "job_postings"
}
