package usecase

import (
	"context"
	"io"
)

// UploadInput carries an uploaded file into the media usecase.
type UploadInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UploadOutput returns where the stored file can be addressed.
type UploadOutput struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// MediaUsecase defines the file-upload operation backed by object storage.
type MediaUsecase interface {
	Upload(ctx context.Context, input *UploadInput) (*UploadOutput, error)
}
