package usecase

import (
	"context"

	"github.com/google/uuid"

	"recruitcms/internal/domain/entity"
)

// NewsInput defines the writable fields of a news post. Slugs are derived
// server-side from the titles and never accepted from the caller.
type NewsInput struct {
	Title     string
	TitleJa   string
	Summary   string
	Body      string
	Published bool
}

// NewsUsecase defines the content operations for news posts.
type NewsUsecase interface {
	List(ctx context.Context, includeDrafts bool) ([]*entity.NewsPost, error)
	GetBySlug(ctx context.Context, slug string) (*entity.NewsPost, error)
	Create(ctx context.Context, input *NewsInput) (*entity.NewsPost, error)
	Update(ctx context.Context, id uuid.UUID, input *NewsInput) (*entity.NewsPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
