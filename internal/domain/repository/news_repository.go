package repository

import (
	"context"
	"errors"

	"recruitcms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNewsNotFound is returned when no news post matches the lookup.
var ErrNewsNotFound = errors.New("news post not found")

// NewsRepository defines the persistence operations for news posts.
type NewsRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.NewsPost, error)

	// FindBySlug matches either the primary or the Japanese slug.
	FindBySlug(ctx context.Context, slug string) (*entity.NewsPost, error)

	// List returns posts newest-first. When publishedOnly is set, drafts are
	// excluded.
	List(ctx context.Context, publishedOnly bool) ([]*entity.NewsPost, error)

	Create(ctx context.Context, post *entity.NewsPost) error

	Update(ctx context.Context, post *entity.NewsPost) error

	Delete(ctx context.Context, id uuid.UUID) error
}
