package repository

import (
	"context"
	"errors"

	"recruitcms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when no job posting matches the lookup.
var ErrJobNotFound = errors.New("job posting not found")

// JobRepository defines the persistence operations for job postings.
type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JobPosting, error)

	// FindBySlug matches either the primary or the Japanese slug.
	FindBySlug(ctx context.Context, slug string) (*entity.JobPosting, error)

	// List returns postings newest-first. When openOnly is set, closed
	// positions are excluded.
	List(ctx context.Context, openOnly bool) ([]*entity.JobPosting, error)

	Create(ctx context.Context, job *entity.JobPosting) error

	Update(ctx context.Context, job *entity.JobPosting) error

	Delete(ctx context.Context, id uuid.UUID) error
}
