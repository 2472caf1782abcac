package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hims/infras/otel"
	"hims/infras/postgres"
	"hims/internal/domains/roomtypeprice/model"
	gDto "hims/shared/dto"
	gRepo "hims/shared/repository"
)

type RoomTypePrice interface {
	Insert(ctx context.Context, model model.RoomTypePrice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomTypePrice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomTypePrice, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomTypePrice]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomTypePrice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomTypePrice](model.EntityName, model.TableName, model.FieldID, false, db, otel).
			WithDefaultSort(model.FieldRoomType, gDto.SortDirAsc),
		db:   db,
		otel: otel,
	}
}
