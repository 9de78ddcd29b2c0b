package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"recruitcms/internal/domain/entity"
	domainerrors "recruitcms/internal/domain/errors"
	"recruitcms/internal/domain/repository"
	"recruitcms/internal/infra/persistence/model"
)

// newsRepository implements the repository.NewsRepository interface using GORM.
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

func (repo *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.NewsPost, error) {
	var newsM model.NewsModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&newsM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news post by id")
	}

	return toNewsDomain(&newsM), nil
}

func (repo *newsRepository) FindBySlug(ctx context.Context, slug string) (*entity.NewsPost, error) {
	var newsM model.NewsModel
	err := repo.db.WithContext(ctx).
		Where("slug = ? OR slug_ja = ?", slug, slug).
		First(&newsM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news post by slug")
	}

	return toNewsDomain(&newsM), nil
}

func (repo *newsRepository) List(ctx context.Context, publishedOnly bool) ([]*entity.NewsPost, error) {
	query := repo.db.WithContext(ctx).Model(&model.NewsModel{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var newsModels []*model.NewsModel
	if err := query.Order("created_at DESC").Find(&newsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list news posts")
	}

	posts := make([]*entity.NewsPost, 0, len(newsModels))
	for _, newsM := range newsModels {
		posts = append(posts, toNewsDomain(newsM))
	}

	return posts, nil
}

func (repo *newsRepository) Create(ctx context.Context, post *entity.NewsPost) error {
	newsM := fromNewsDomain(post)

	if err := repo.db.WithContext(ctx).Create(newsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugTaken.WrapMessage("news slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create news post")
	}

	post.ID = newsM.ID
	post.CreatedAt = newsM.CreatedAt
	post.UpdatedAt = newsM.UpdatedAt

	return nil
}

func (repo *newsRepository) Update(ctx context.Context, post *entity.NewsPost) error {
	newsM := fromNewsDomain(post)

	result := repo.db.WithContext(ctx).
		Model(&model.NewsModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":        newsM.Title,
			"title_ja":     newsM.TitleJa,
			"slug":         newsM.Slug,
			"slug_ja":      newsM.SlugJa,
			"summary":      newsM.Summary,
			"body":         newsM.Body,
			"published":    newsM.Published,
			"published_at": newsM.PublishedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrSlugTaken.WrapMessage("news slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update news post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

func (repo *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NewsModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete news post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNewsDomain(data *model.NewsModel) *entity.NewsPost {
	if data == nil {
		return nil
	}

	return &entity.NewsPost{
		ID:          data.ID,
		Title:       data.Title,
		TitleJa:     data.TitleJa,
		Slug:        data.Slug,
		SlugJa:      data.SlugJa,
		Summary:     data.Summary,
		Body:        data.Body,
		Published:   data.Published,
		PublishedAt: data.PublishedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromNewsDomain(data *entity.NewsPost) *model.NewsModel {
	if data == nil {
		return nil
	}

	return &model.NewsModel{
		ID:          data.ID,
		Title:       data.Title,
		TitleJa:     data.TitleJa,
		Slug:        data.Slug,
		SlugJa:      data.SlugJa,
		Summary:     data.Summary,
		Body:        data.Body,
		Published:   data.Published,
		PublishedAt: data.PublishedAt,
	}
}
