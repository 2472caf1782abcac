package service_test

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hims/config"
	otelMocks "hims/infras/otel/mocks"
	s3Mocks "hims/infras/s3/mocks"
	"hims/internal/domains/upload/service"
	"hims/shared/failure"
)

func newService(t *testing.T) (service.Upload, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "hims-bucket"

	return service.New(mockS3, cfg, otelMocks.NewOtel()), mockS3
}

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{contentType},
		},
	}
}

func TestUploadService_Upload(t *testing.T) {
	t.Run("successful upload", func(t *testing.T) {
		svc, mockS3 := newService(t)

		header := fileHeader("scan.png", "image/png", 1024)

		mockS3.EXPECT().
			UploadFile(gomock.Any(), "", "documents", gomock.Any(), header, gomock.Any()).
			Return("https://cdn.example.com/documents/file.png", nil)

		res, err := svc.Upload(context.Background(), nil, header, "documents")

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.Key, "documents/"))
		assert.True(t, strings.HasSuffix(res.Key, ".png"))
		assert.Equal(t, "hims-bucket", res.Bucket)
		assert.Equal(t, "https://cdn.example.com/documents/file.png", res.Location)
	})

	t.Run("defaults folder", func(t *testing.T) {
		svc, mockS3 := newService(t)

		header := fileHeader("report.pdf", "application/pdf", 2048)

		mockS3.EXPECT().
			UploadFile(gomock.Any(), "", "public", gomock.Any(), header, gomock.Any()).
			Return("https://cdn.example.com/public/file.pdf", nil)

		res, err := svc.Upload(context.Background(), nil, header, "")

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.Key, "public/"))
	})

	t.Run("rejects unsupported content type", func(t *testing.T) {
		svc, _ := newService(t)

		header := fileHeader("malware.exe", "application/octet-stream", 1024)

		_, err := svc.Upload(context.Background(), nil, header, "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		svc, _ := newService(t)

		header := fileHeader("huge.png", "image/png", 6<<20)

		_, err := svc.Upload(context.Background(), nil, header, "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Upload(context.Background(), nil, nil, "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestUploadService_SignedURL(t *testing.T) {
	t.Run("default expiry", func(t *testing.T) {
		svc, mockS3 := newService(t)

		mockS3.EXPECT().
			GetSignedURL(gomock.Any(), "", "public/file.png", time.Hour).
			Return("https://signed.example.com/file.png", nil)

		res, err := svc.SignedURL(context.Background(), "public/file.png", 0)

		assert.NoError(t, err)
		assert.Equal(t, "https://signed.example.com/file.png", res.URL)
		assert.Equal(t, 3600, res.ExpiresIn)
	})

	t.Run("missing key", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.SignedURL(context.Background(), "", 60)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestUploadService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockS3 := newService(t)

		mockS3.EXPECT().
			DeleteFile(gomock.Any(), "", "", "public/file.png").
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "public/file.png"))
	})

	t.Run("missing key", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Delete(context.Background(), "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
