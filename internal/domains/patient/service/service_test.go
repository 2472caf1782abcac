package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hims/config"
	otelMocks "hims/infras/otel/mocks"
	patientMocks "hims/internal/domains/patient/mocks"
	"hims/internal/domains/patient/model"
	"hims/internal/domains/patient/model/dto"
	"hims/internal/domains/patient/service"
	eventMocks "hims/internal/events/mocks"
	gDto "hims/shared/dto"
	"hims/shared/failure"
	gModel "hims/shared/model"
	"hims/shared/timezone"
)

func newService(t *testing.T) (service.Patient, *patientMocks.MockPatient, *eventMocks.MockPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := patientMocks.NewMockPatient(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, otelMocks.NewOtel())

	return svc, mockRepo, mockPublisher
}

func validCreateRequest() dto.CreatePatientRequest {
	return dto.CreatePatientRequest{
		Gender:     "female",
		NationalID: "1234567890123",
		FirstName:  "Jane",
		LastName:   "Doe",
		Phone:      "+66812345678",
	}
}

func TestPatientService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreatePatientRequest
		setupMock func(repo *patientMocks.MockPatient, publisher *eventMocks.MockPublisher)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validCreateRequest(),
			setupMock: func(repo *patientMocks.MockPatient, publisher *eventMocks.MockPublisher) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				publisher.EXPECT().
					RecordChange(gomock.Any(), model.EntityName, gomock.Any(), "created")
			},
			wantErr: false,
		},
		{
			name: "duplicate national id",
			req:  validCreateRequest(),
			setupMock: func(repo *patientMocks.MockPatient, _ *eventMocks.MockPublisher) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  validCreateRequest(),
			setupMock: func(repo *patientMocks.MockPatient, _ *eventMocks.MockPublisher) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockPublisher := newService(t)
			tt.setupMock(mockRepo, mockPublisher)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.req.NationalID, res.NationalID)
			assert.Equal(t, tt.req.FirstName, res.FirstName)
		})
	}
}

func TestPatientService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(23, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Patient{
			{
				ID:         "patient-1",
				Gender:     "male",
				NationalID: "1234567890123",
				FirstName:  "John",
				LastName:   "Doe",
				Phone:      "+66812345678",
				Metadata: gModel.Metadata{
					CreatedAt: timezone.Now(),
					UpdatedAt: timezone.Now(),
				},
			},
		}, nil)

	res, pagination, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "patient-1", res[0].ID)
	assert.Equal(t, 23, pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
}

func TestPatientService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Patient{
				ID:         "patient-1",
				Gender:     "female",
				NationalID: "1234567890123",
				FirstName:  "Jane",
				LastName:   "Doe",
				Phone:      "+66812345678",
				Metadata: gModel.Metadata{
					CreatedAt: timezone.Now(),
					UpdatedAt: timezone.Now(),
				},
			}, nil)

		res, err := svc.Get(context.Background(), "patient-1")

		assert.NoError(t, err)
		assert.Equal(t, "patient-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Patient{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPatientService_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, mockPublisher := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Patient{
				ID:         "patient-1",
				Gender:     "female",
				NationalID: "1234567890123",
				FirstName:  "Janet",
				LastName:   "Doe",
				Phone:      "+66812345678",
				Metadata: gModel.Metadata{
					CreatedAt: timezone.Now(),
					UpdatedAt: timezone.Now(),
				},
			}, nil)
		mockPublisher.EXPECT().
			RecordChange(gomock.Any(), model.EntityName, "patient-1", "updated")

		res, err := svc.Update(context.Background(), dto.UpdatePatientRequest{FirstName: "Janet"}, "patient-1")

		assert.NoError(t, err)
		assert.Equal(t, "Janet", res.FirstName)
	})

	t.Run("empty payload returns current state", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Patient{
				ID:         "patient-1",
				Gender:     "female",
				NationalID: "1234567890123",
				FirstName:  "Jane",
				LastName:   "Doe",
				Phone:      "+66812345678",
				Metadata: gModel.Metadata{
					CreatedAt: timezone.Now(),
					UpdatedAt: timezone.Now(),
				},
			}, nil)

		res, err := svc.Update(context.Background(), dto.UpdatePatientRequest{}, "patient-1")

		assert.NoError(t, err)
		assert.Equal(t, "Jane", res.FirstName)
	})

	t.Run("national id conflict", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Update(context.Background(), dto.UpdatePatientRequest{NationalID: "9876543210987"}, "patient-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("missing patient", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		_, err := svc.Update(context.Background(), dto.UpdatePatientRequest{FirstName: "Janet"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPatientService_Delete(t *testing.T) {
	t.Run("successful soft delete", func(t *testing.T) {
		svc, mockRepo, mockPublisher := newService(t)

		mockRepo.EXPECT().
			SoftDelete(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		mockPublisher.EXPECT().
			RecordChange(gomock.Any(), model.EntityName, "patient-1", "deleted")

		assert.NoError(t, svc.Delete(context.Background(), "patient-1"))
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			SoftDelete(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		err := svc.Delete(context.Background(), "patient-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPatientService_HardDelete(t *testing.T) {
	t.Run("removes the row permanently", func(t *testing.T) {
		svc, mockRepo, mockPublisher := newService(t)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		mockPublisher.EXPECT().
			RecordChange(gomock.Any(), model.EntityName, "patient-1", "deleted")

		assert.NoError(t, svc.HardDelete(context.Background(), "patient-1"))
	})

	t.Run("missing patient", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		err := svc.HardDelete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
