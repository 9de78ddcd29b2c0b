package usecase

import (
	"context"

	"github.com/google/uuid"

	"recruitcms/internal/domain/entity"
)

// JobInput defines the writable fields of a job posting. Slugs are derived
// server-side from the titles.
type JobInput struct {
	Title          string
	TitleJa        string
	Department     string
	Location       string
	EmploymentType string
	Description    string
	Open           bool
}

// JobUsecase defines the content operations for job postings.
type JobUsecase interface {
	List(ctx context.Context, includeClosed bool) ([]*entity.JobPosting, error)
	GetBySlug(ctx context.Context, slug string) (*entity.JobPosting, error)
	Create(ctx context.Context, input *JobInput) (*entity.JobPosting, error)
	Update(ctx context.Context, id uuid.UUID, input *JobInput) (*entity.JobPosting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
