package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"hims/config"
	"hims/infras/otel"
	"hims/internal/domains/staff/model"
	"hims/internal/domains/staff/model/dto"
	"hims/internal/domains/staff/repository"
	"hims/internal/events"
	"hims/shared"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	"hims/shared/failure"
)

const (
	msgNotFound            = "staff not found"
	msgDuplicateNationalID = "national id already in use"
	msgDuplicatePhone      = "phone already in use"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.StaffResponse, gDto.Pagination, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (dto.StaffResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Staff
	publisher events.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Staff, publisher events.Publisher, cfg *config.Config, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.checkDuplicates(ctx, req.NationalID, req.Phone, ""); err != nil {
		return res, err
	}

	staff := req.ToModel()

	if err = s.repo.Insert(ctx, staff); err != nil {
		log.Error().Err(err).Msg("failed to create staff")

		return res, conflictFromUniqueViolation(err)
	}

	s.publisher.RecordChange(ctx, model.EntityName, staff.ID, events.ActionCreated)

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.StaffResponse, pagination gDto.Pagination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, pagination, fmt.Errorf("failed to count staff: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, pagination, fmt.Errorf("failed to get staff: %w", err)
	}

	return dto.FromModels(models), gDto.NewPagination(params, total), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == "" {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return s.Get(ctx, id)
	}

	if err = s.checkDuplicates(ctx, req.NationalID, req.Phone, id); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	affected, err := s.repo.Update(ctx, shared.TransformFields(req), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update staff")

		return res, conflictFromUniqueViolation(err)
	}

	if affected == 0 {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	staff, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated staff")

		return res, fmt.Errorf("failed to get updated staff: %w", err)
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionUpdated)

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.SoftDelete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete staff")

		return fmt.Errorf("failed to delete staff: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionDeleted)

	return nil
}

// checkDuplicates verifies the unique columns among live rows, skipping
// empty values so partial updates only check what they change.
func (s *serviceImpl) checkDuplicates(ctx context.Context, nationalID, phone, excludeID string) error {
	if nationalID != "" {
		taken, err := s.repo.Exist(ctx, filterByUniqueField(model.FieldNationalID, nationalID, excludeID))
		if err != nil {
			log.Error().Err(err).Msg("failed to check national id")

			return fmt.Errorf("failed to check national id: %w", err)
		}

		if taken {
			return failure.Conflict(msgDuplicateNationalID) //nolint:wrapcheck
		}
	}

	if phone != "" {
		taken, err := s.repo.Exist(ctx, filterByUniqueField(model.FieldPhone, phone, excludeID))
		if err != nil {
			log.Error().Err(err).Msg("failed to check phone")

			return fmt.Errorf("failed to check phone: %w", err)
		}

		if taken {
			return failure.Conflict(msgDuplicatePhone) //nolint:wrapcheck
		}
	}

	return nil
}

// conflictFromUniqueViolation maps a race-window 23505 to the message for
// the index that was actually violated. Staff has two unique columns, so
// the generic single-message mapping would blame the wrong one for phone
// collisions.
func conflictFromUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		if strings.Contains(pqErr.Constraint, model.FieldPhone) {
			return failure.Conflict(msgDuplicatePhone) //nolint:wrapcheck
		}

		return failure.Conflict(msgDuplicateNationalID) //nolint:wrapcheck
	}

	return err
}

func filterByUniqueField(field, value, excludeID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Value:    value,
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
