package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"recruitcms/internal/domain/entity"
	domainerrors "recruitcms/internal/domain/errors"
	"recruitcms/internal/domain/repository"
	"recruitcms/internal/domain/service"
	"recruitcms/internal/usecase"
)

// newsEntityType seeds the synthetic-slug fallback for news posts.
const newsEntityType = "news"

// newsService implements the NewsUsecase interface.
type newsService struct {
	newsRepo repository.NewsRepository
	slugger  service.SlugService
	logger   *slog.Logger
}

// NewsServiceParams holds dependencies for newsService, injected by Fx.
type NewsServiceParams struct {
	fx.In

	NewsRepo repository.NewsRepository
	Slugger  service.SlugService
	Logger   *slog.Logger
}

// NewNewsService is the constructor for newsService.
func NewNewsService(params NewsServiceParams) usecase.NewsUsecase {
	return &newsService{
		newsRepo: params.NewsRepo,
		slugger:  params.Slugger,
		logger:   params.Logger,
	}
}

func (srv *newsService) List(ctx context.Context, includeDrafts bool) ([]*entity.NewsPost, error) {
	posts, err := srv.newsRepo.List(ctx, !includeDrafts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news posts")
	}

	return posts, nil
}

func (srv *newsService) GetBySlug(ctx context.Context, slug string) (*entity.NewsPost, error) {
	post, err := srv.newsRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "news post not found")
		}

		return nil, errors.Wrap(err, "failed to load news post")
	}

	return post, nil
}

func (srv *newsService) Create(ctx context.Context, input *usecase.NewsInput) (*entity.NewsPost, error) {
	if input.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "news title is required")
	}

	post := &entity.NewsPost{
		Title:     input.Title,
		TitleJa:   input.TitleJa,
		Slug:      srv.slugger.Slugify(newsEntityType, input.Title),
		SlugJa:    srv.slugger.Slugify(newsEntityType, input.TitleJa),
		Summary:   input.Summary,
		Body:      input.Body,
		Published: input.Published,
	}
	if post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := srv.newsRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create news post")
	}

	srv.logger.Info("News post created", slog.Any("newsID", post.ID), slog.String("slug", post.Slug))

	return post, nil
}

func (srv *newsService) Update(ctx context.Context, id uuid.UUID, input *usecase.NewsInput) (*entity.NewsPost, error) {
	if input.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "news title is required")
	}

	post, err := srv.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "news post not found")
		}

		return nil, errors.Wrap(err, "failed to load news post for update")
	}

	// Regenerate slugs only when the source title changed, so published
	// URLs stay stable across content-only edits.
	if input.Title != post.Title {
		post.Slug = srv.slugger.Slugify(newsEntityType, input.Title)
	}
	if input.TitleJa != post.TitleJa {
		post.SlugJa = srv.slugger.Slugify(newsEntityType, input.TitleJa)
	}

	if input.Published && !post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	post.Title = input.Title
	post.TitleJa = input.TitleJa
	post.Summary = input.Summary
	post.Body = input.Body
	post.Published = input.Published

	if err := srv.newsRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to update news post")
	}

	return post, nil
}

func (srv *newsService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.newsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "news post not found")
		}

		return errors.Wrap(err, "failed to delete news post")
	}

	return nil
}
