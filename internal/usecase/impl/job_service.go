package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"recruitcms/internal/domain/entity"
	domainerrors "recruitcms/internal/domain/errors"
	"recruitcms/internal/domain/repository"
	"recruitcms/internal/domain/service"
	"recruitcms/internal/usecase"
)

// jobEntityType seeds the synthetic-slug fallback for job postings.
const jobEntityType = "job"

// jobService implements the JobUsecase interface.
type jobService struct {
	jobRepo repository.JobRepository
	slugger service.SlugService
	logger  *slog.Logger
}

// JobServiceParams holds dependencies for jobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	JobRepo repository.JobRepository
	Slugger service.SlugService
	Logger  *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		jobRepo: params.JobRepo,
		slugger: params.Slugger,
		logger:  params.Logger,
	}
}

func (srv *jobService) List(ctx context.Context, includeClosed bool) ([]*entity.JobPosting, error) {
	jobs, err := srv.jobRepo.List(ctx, !includeClosed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job postings")
	}

	return jobs, nil
}

func (srv *jobService) GetBySlug(ctx context.Context, slug string) (*entity.JobPosting, error) {
	job, err := srv.jobRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "job posting not found")
		}

		return nil, errors.Wrap(err, "failed to load job posting")
	}

	return job, nil
}

func (srv *jobService) Create(ctx context.Context, input *usecase.JobInput) (*entity.JobPosting, error) {
	if input.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "job title is required")
	}

	job := &entity.JobPosting{
		Title:          input.Title,
		TitleJa:        input.TitleJa,
		Slug:           srv.slugger.Slugify(jobEntityType, input.Title),
		SlugJa:         srv.slugger.Slugify(jobEntityType, input.TitleJa),
		Department:     input.Department,
		Location:       input.Location,
		EmploymentType: input.EmploymentType,
		Description:    input.Description,
		Open:           input.Open,
	}

	if err := srv.jobRepo.Create(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to create job posting")
	}

	srv.logger.Info("Job posting created", slog.Any("jobID", job.ID), slog.String("slug", job.Slug))

	return job, nil
}

func (srv *jobService) Update(ctx context.Context, id uuid.UUID, input *usecase.JobInput) (*entity.JobPosting, error) {
	if input.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "job title is required")
	}

	job, err := srv.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "job posting not found")
		}

		return nil, errors.Wrap(err, "failed to load job posting for update")
	}

	if input.Title != job.Title {
		job.Slug = srv.slugger.Slugify(jobEntityType, input.Title)
	}
	if input.TitleJa != job.TitleJa {
		job.SlugJa = srv.slugger.Slugify(jobEntityType, input.TitleJa)
	}

	job.Title = input.Title
	job.TitleJa = input.TitleJa
	job.Department = input.Department
	job.Location = input.Location
	job.EmploymentType = input.EmploymentType
	job.Description = input.Description
	job.Open = input.Open

	if err := srv.jobRepo.Update(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to update job posting")
	}

	return job, nil
}

func (srv *jobService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "job posting not found")
		}

		return errors.Wrap(err, "failed to delete job posting")
	}

	return nil
}
