package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hims/config"
	"hims/infras/otel"
	"hims/infras/s3"
	"hims/internal/domains/upload/model/dto"
	"hims/shared/constant"
	"hims/shared/failure"
	"hims/shared/timezone"
	"hims/shared/validator"
)

type Upload interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (dto.UploadResponse, error)
	SignedURL(ctx context.Context, key string, expiresIn int) (dto.SignedURLResponse, error)
	Delete(ctx context.Context, key string) error
}

type serviceImpl struct {
	s3   s3.S3
	cfg  *config.Config
	otel otel.Otel
}

func New(s3Client s3.S3, cfg *config.Config, otel otel.Otel) Upload {
	return &serviceImpl{
		s3:   s3Client,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".upload.Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	if header == nil {
		return res, failure.BadRequestFromString("file is required") //nolint:wrapcheck
	}

	payload := dto.UploadFilePayload{File: *header}
	if err = validator.ValidateStruct(&payload); err != nil {
		return res, err
	}

	if folder == "" {
		folder = constant.UploadDefaultFolder
	}

	fileName := generateFileName(header.Filename)

	location, err := s.s3.UploadFile(ctx, "", folder, file, header, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file")

		return res, fmt.Errorf("failed to upload file: %w", err)
	}

	return dto.UploadResponse{
		Key:      folder + "/" + fileName,
		Bucket:   s.cfg.External.S3.BucketName,
		Location: location,
	}, nil
}

func (s *serviceImpl) SignedURL(ctx context.Context, key string, expiresIn int) (res dto.SignedURLResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".upload.SignedURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	if key == "" {
		return res, failure.BadRequestFromString("key is required") //nolint:wrapcheck
	}

	if expiresIn <= 0 {
		expiresIn = constant.SignedURLDefaultExpireSeconds
	}

	url, err := s.s3.GetSignedURL(ctx, "", key, time.Duration(expiresIn)*time.Second)
	if err != nil {
		log.Error().Err(err).Msg("failed to create signed url")

		return res, fmt.Errorf("failed to create signed url: %w", err)
	}

	return dto.SignedURLResponse{
		URL:       url,
		ExpiresIn: expiresIn,
	}, nil
}

func (s *serviceImpl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".upload.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if key == "" {
		return failure.BadRequestFromString("key is required") //nolint:wrapcheck
	}

	if err = s.s3.DeleteFile(ctx, "", "", key); err != nil {
		log.Error().Err(err).Msg("failed to delete file")

		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// generateFileName builds a collision-resistant object name while keeping
// the original extension.
func generateFileName(original string) string {
	random := strings.Split(uuid.NewString(), "-")[0]

	return fmt.Sprintf("%d_%s%s", timezone.Now().UnixMilli(), random, filepath.Ext(original))
}
