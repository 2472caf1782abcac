package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hims/config"
	"hims/infras/otel"
	"hims/internal/domains/roomtypeprice/model"
	"hims/internal/domains/roomtypeprice/model/dto"
	"hims/internal/domains/roomtypeprice/repository"
	"hims/internal/events"
	"hims/shared"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	"hims/shared/failure"
)

const (
	msgNotFound          = "room type price not found"
	msgDuplicateRoomType = "room type already priced"
)

type RoomTypePrice interface {
	Create(ctx context.Context, req dto.CreateRoomTypePriceRequest) (dto.RoomTypePriceResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.RoomTypePriceResponse, gDto.Pagination, error)
	Get(ctx context.Context, id string) (dto.RoomTypePriceResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomTypePriceRequest, id string) (dto.RoomTypePriceResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.RoomTypePrice
	publisher events.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.RoomTypePrice, publisher events.Publisher, cfg *config.Config, otel otel.Otel) RoomTypePrice {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomTypePriceRequest) (res dto.RoomTypePriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type_price.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := s.repo.Exist(ctx, filterByRoomType(req.RoomType, ""))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type")

		return res, fmt.Errorf("failed to check room type: %w", err)
	}

	if taken {
		return res, failure.Conflict(msgDuplicateRoomType) //nolint:wrapcheck
	}

	price := req.ToModel()

	if err = s.repo.Insert(ctx, price); err != nil {
		log.Error().Err(err).Msg("failed to create room type price")

		return res, failure.ConflictFromUniqueViolation(err, msgDuplicateRoomType) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, price.ID, events.ActionCreated)

	res.FromModel(price)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.RoomTypePriceResponse, pagination gDto.Pagination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type_price.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room type prices")

		return res, pagination, fmt.Errorf("failed to count room type prices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type prices")

		return res, pagination, fmt.Errorf("failed to get room type prices: %w", err)
	}

	return dto.FromModels(models), gDto.NewPagination(params, total), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomTypePriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type_price.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	price, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type price")

		return res, fmt.Errorf("failed to get room type price: %w", err)
	}

	if price.ID == "" {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	res.FromModel(price)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomTypePriceRequest, id string) (res dto.RoomTypePriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type_price.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return s.Get(ctx, id)
	}

	if req.RoomType != "" {
		taken, err := s.repo.Exist(ctx, filterByRoomType(req.RoomType, id))
		if err != nil {
			log.Error().Err(err).Msg("failed to check room type")

			return res, fmt.Errorf("failed to check room type: %w", err)
		}

		if taken {
			return res, failure.Conflict(msgDuplicateRoomType) //nolint:wrapcheck
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	affected, err := s.repo.Update(ctx, shared.TransformFields(req), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update room type price")

		return res, failure.ConflictFromUniqueViolation(err, msgDuplicateRoomType) //nolint:wrapcheck
	}

	if affected == 0 {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	price, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated room type price")

		return res, fmt.Errorf("failed to get updated room type price: %w", err)
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionUpdated)

	res.FromModel(price)

	return res, nil
}

// Delete removes the pricing row permanently; this table has no soft
// delete marker.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type_price.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete room type price")

		return fmt.Errorf("failed to delete room type price: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionDeleted)

	return nil
}

func filterByRoomType(roomType, excludeID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomType,
				Value:    roomType,
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
