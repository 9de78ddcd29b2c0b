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

// jobRepository implements the repository.JobRepository interface using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JobPosting, error) {
	var jobM model.JobModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job posting by id")
	}

	return toJobDomain(&jobM), nil
}

func (repo *jobRepository) FindBySlug(ctx context.Context, slug string) (*entity.JobPosting, error) {
	var jobM model.JobModel
	err := repo.db.WithContext(ctx).
		Where("slug = ? OR slug_ja = ?", slug, slug).
		First(&jobM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job posting by slug")
	}

	return toJobDomain(&jobM), nil
}

func (repo *jobRepository) List(ctx context.Context, openOnly bool) ([]*entity.JobPosting, error) {
	query := repo.db.WithContext(ctx).Model(&model.JobModel{})
	if openOnly {
		query = query.Where("open = ?", true)
	}

	var jobModels []*model.JobModel
	if err := query.Order("created_at DESC").Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list job postings")
	}

	jobs := make([]*entity.JobPosting, 0, len(jobModels))
	for _, jobM := range jobModels {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, nil
}

func (repo *jobRepository) Create(ctx context.Context, job *entity.JobPosting) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugTaken.WrapMessage("job slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job posting")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

func (repo *jobRepository) Update(ctx context.Context, job *entity.JobPosting) error {
	jobM := fromJobDomain(job)

	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"title":           jobM.Title,
			"title_ja":        jobM.TitleJa,
			"slug":            jobM.Slug,
			"slug_ja":         jobM.SlugJa,
			"department":      jobM.Department,
			"location":        jobM.Location,
			"employment_type": jobM.EmploymentType,
			"description":     jobM.Description,
			"open":            jobM.Open,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrSlugTaken.WrapMessage("job slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update job posting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

func (repo *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.JobModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete job posting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toJobDomain(data *model.JobModel) *entity.JobPosting {
	if data == nil {
		return nil
	}

	return &entity.JobPosting{
		ID:             data.ID,
		Title:          data.Title,
		TitleJa:        data.TitleJa,
		Slug:           data.Slug,
		SlugJa:         data.SlugJa,
		Department:     data.Department,
		Location:       data.Location,
		EmploymentType: data.EmploymentType,
		Description:    data.Description,
		Open:           data.Open,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromJobDomain(data *entity.JobPosting) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:             data.ID,
		Title:          data.Title,
		TitleJa:        data.TitleJa,
		Slug:           data.Slug,
		SlugJa:         data.SlugJa,
		Department:     data.Department,
		Location:       data.Location,
		EmploymentType: data.EmploymentType,
		Description:    data.Description,
		Open:           data.Open,
	}
}
