package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hims/infras/otel"
	"hims/infras/postgres"
	"hims/internal/domains/patientmedicalinfo/model"
	gDto "hims/shared/dto"
	gRepo "hims/shared/repository"
)

type PatientMedicalInfo interface {
	Insert(ctx context.Context, model model.PatientMedicalInfo) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PatientMedicalInfo, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PatientMedicalInfo, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	SoftDelete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PatientMedicalInfo]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PatientMedicalInfo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PatientMedicalInfo](model.EntityName, model.TableName, model.FieldID, true, db, otel),
		db:         db,
		otel:       otel,
	}
}
