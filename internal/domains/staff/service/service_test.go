package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hims/config"
	otelMocks "hims/infras/otel/mocks"
	staffMocks "hims/internal/domains/staff/mocks"
	"hims/internal/domains/staff/model"
	"hims/internal/domains/staff/model/dto"
	"hims/internal/domains/staff/service"
	eventMocks "hims/internal/events/mocks"
	gDto "hims/shared/dto"
	"hims/shared/failure"
	gModel "hims/shared/model"
	"hims/shared/timezone"
)

func newService(t *testing.T) (service.Staff, *staffMocks.MockStaff, *eventMocks.MockPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := staffMocks.NewMockStaff(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)

	svc := service.New(mockRepo, mockPublisher, &config.Config{}, otelMocks.NewOtel())

	return svc, mockRepo, mockPublisher
}

func validCreateRequest() dto.CreateStaffRequest {
	return dto.CreateStaffRequest{
		FullNameEng: "A B",
		FullNameTh:  "ก ข",
		NationalID:  "1111111111111",
		Phone:       "0800000000",
		Gender:      "male",
		Role:        "nurse",
		HireDate:    "2024-01-01",
	}
}

func TestStaffService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo, mockPublisher := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil).
			Times(2)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)
		mockPublisher.EXPECT().
			RecordChange(gomock.Any(), model.EntityName, gomock.Any(), "created")

		res, err := svc.Create(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "nurse", res.Role)
		assert.Equal(t, "2024-01-01", res.HireDate)
	})

	t.Run("duplicate national id", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("duplicate phone", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		// national id passes, phone collides
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil).
			Times(2)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
	})

	// a concurrent insert can slip past both Exist checks; the violated
	// index decides which conflict message comes back
	t.Run("race on phone index", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil).
			Times(2)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505", Constraint: "idx_staff_phone"})

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "phone already in use")
	})

	t.Run("race on national id index", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil).
			Times(2)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505", Constraint: "idx_staff_national_id"})

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "national id already in use")
	})
}

func TestStaffService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Staff{
			{
				ID:          "staff-1",
				FullNameEng: "A B",
				FullNameTh:  "ก ข",
				NationalID:  "1111111111111",
				Phone:       "0800000000",
				Gender:      "male",
				Role:        "nurse",
				HireDate:    timezone.Now(),
				Metadata: gModel.Metadata{
					CreatedAt: timezone.Now(),
					UpdatedAt: timezone.Now(),
				},
			},
		}, nil)

	res, pagination, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, 1, pagination.Total)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestStaffService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Staff{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestStaffService_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, mockPublisher := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Staff{
				ID:          "staff-1",
				FullNameEng: "A B",
				FullNameTh:  "ก ข",
				NationalID:  "1111111111111",
				Phone:       "0811111111",
				Gender:      "male",
				Role:        "nurse",
				HireDate:    timezone.Now(),
				Metadata: gModel.Metadata{
					CreatedAt: timezone.Now(),
					UpdatedAt: timezone.Now(),
				},
			}, nil)
		mockPublisher.EXPECT().
			RecordChange(gomock.Any(), model.EntityName, "staff-1", "updated")

		res, err := svc.Update(context.Background(), dto.UpdateStaffRequest{Phone: "0811111111"}, "staff-1")

		assert.NoError(t, err)
		assert.Equal(t, "0811111111", res.Phone)
	})

	t.Run("empty payload returns current state", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Staff{
				ID:          "staff-1",
				FullNameEng: "A B",
				FullNameTh:  "ก ข",
				NationalID:  "1111111111111",
				Phone:       "0800000000",
				Gender:      "male",
				Role:        "nurse",
				HireDate:    timezone.Now(),
				Metadata: gModel.Metadata{
					CreatedAt: timezone.Now(),
					UpdatedAt: timezone.Now(),
				},
			}, nil)

		res, err := svc.Update(context.Background(), dto.UpdateStaffRequest{}, "staff-1")

		assert.NoError(t, err)
		assert.Equal(t, "staff-1", res.ID)
	})

	t.Run("missing staff", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		_, err := svc.Update(context.Background(), dto.UpdateStaffRequest{Role: "doctor"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestStaffService_Delete(t *testing.T) {
	t.Run("successful soft delete", func(t *testing.T) {
		svc, mockRepo, mockPublisher := newService(t)

		mockRepo.EXPECT().
			SoftDelete(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		mockPublisher.EXPECT().
			RecordChange(gomock.Any(), model.EntityName, "staff-1", "deleted")

		assert.NoError(t, svc.Delete(context.Background(), "staff-1"))
	})

	t.Run("already deleted reports not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			SoftDelete(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		err := svc.Delete(context.Background(), "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
