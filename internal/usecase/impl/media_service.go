package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	domainerrors "recruitcms/internal/domain/errors"
	"recruitcms/internal/domain/service"
	"recruitcms/internal/usecase"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	store  service.FileStore
	logger *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Store  service.FileStore
	Logger *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// Upload stores the file under a fresh uuid key, keeping only the original
// extension from the client-supplied filename.
func (srv *mediaService) Upload(ctx context.Context, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if input.Content == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "upload is empty")
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	key := "uploads/" + uuid.New().String() + ext

	if err := srv.store.Save(ctx, key, input.ContentType, input.Content); err != nil {
		return nil, errors.Wrap(err, "failed to store upload")
	}

	srv.logger.Info("File uploaded", slog.String("key", key), slog.String("contentType", input.ContentType))

	return &usecase.UploadOutput{
		Key: key,
		URL: srv.store.PublicURL(key),
	}, nil
}
