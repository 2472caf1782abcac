package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Room=MockRoomService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hims/config"
	"hims/infras/otel"
	"hims/internal/domains/room/model"
	"hims/internal/domains/room/model/dto"
	"hims/internal/domains/room/repository"
	"hims/internal/events"
	"hims/shared"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	"hims/shared/failure"
)

const (
	msgNotFound            = "room not found"
	msgDuplicateRoomNumber = "room number already in use"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.RoomResponse, gDto.Pagination, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Room
	publisher events.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Room, publisher events.Publisher, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := s.repo.Exist(ctx, filterByRoomNumber(req.RoomNumber, ""))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return res, fmt.Errorf("failed to check room number: %w", err)
	}

	if taken {
		return res, failure.Conflict(msgDuplicateRoomNumber) //nolint:wrapcheck
	}

	room := req.ToModel()

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, failure.ConflictFromUniqueViolation(err, msgDuplicateRoomNumber) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, room.ID, events.ActionCreated)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.RoomResponse, pagination gDto.Pagination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, pagination, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, pagination, fmt.Errorf("failed to get rooms: %w", err)
	}

	return dto.FromModels(models), gDto.NewPagination(params, total), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return s.Get(ctx, id)
	}

	if req.RoomNumber != "" {
		taken, err := s.repo.Exist(ctx, filterByRoomNumber(req.RoomNumber, id))
		if err != nil {
			log.Error().Err(err).Msg("failed to check room number")

			return res, fmt.Errorf("failed to check room number: %w", err)
		}

		if taken {
			return res, failure.Conflict(msgDuplicateRoomNumber) //nolint:wrapcheck
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	affected, err := s.repo.Update(ctx, shared.TransformFields(req), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return res, failure.ConflictFromUniqueViolation(err, msgDuplicateRoomNumber) //nolint:wrapcheck
	}

	if affected == 0 {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated room")

		return res, fmt.Errorf("failed to get updated room: %w", err)
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionUpdated)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.SoftDelete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionDeleted)

	return nil
}

func filterByRoomNumber(roomNumber, excludeID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Value:    roomNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if excludeID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return filter
}
