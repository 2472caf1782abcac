package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hims/config"
	"hims/infras/otel"
	"hims/internal/domains/patient/model"
	"hims/internal/domains/patient/model/dto"
	"hims/internal/domains/patient/repository"
	"hims/internal/events"
	"hims/shared"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	"hims/shared/failure"
)

const (
	msgNotFound            = "patient not found"
	msgDuplicateNationalID = "national id already in use"
)

type Patient interface {
	Create(ctx context.Context, req dto.CreatePatientRequest) (dto.PatientResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.PatientResponse, gDto.Pagination, error)
	Get(ctx context.Context, id string) (dto.PatientResponse, error)
	Update(ctx context.Context, req dto.UpdatePatientRequest, id string) (dto.PatientResponse, error)
	Delete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Patient
	publisher events.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Patient, publisher events.Publisher, cfg *config.Config, otel otel.Otel) Patient {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePatientRequest) (res dto.PatientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := s.repo.Exist(ctx, filterByNationalID(req.NationalID, ""))
	if err != nil {
		log.Error().Err(err).Msg("failed to check national id")

		return res, fmt.Errorf("failed to check national id: %w", err)
	}

	if taken {
		return res, failure.Conflict(msgDuplicateNationalID) //nolint:wrapcheck
	}

	patient := req.ToModel()

	if err = s.repo.Insert(ctx, patient); err != nil {
		log.Error().Err(err).Msg("failed to create patient")

		return res, failure.ConflictFromUniqueViolation(err, msgDuplicateNationalID) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, patient.ID, events.ActionCreated)

	res.FromModel(patient)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.PatientResponse, pagination gDto.Pagination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count patients")

		return res, pagination, fmt.Errorf("failed to count patients: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get patients")

		return res, pagination, fmt.Errorf("failed to get patients: %w", err)
	}

	return dto.FromModels(models), gDto.NewPagination(params, total), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PatientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	patient, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get patient")

		return res, fmt.Errorf("failed to get patient: %w", err)
	}

	if patient.ID == "" {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	res.FromModel(patient)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePatientRequest, id string) (res dto.PatientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	// an empty payload is a no-op read of the current state
	if req.IsEmpty() {
		return s.Get(ctx, id)
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if req.NationalID != "" {
		taken, err := s.repo.Exist(ctx, filterByNationalID(req.NationalID, id))
		if err != nil {
			log.Error().Err(err).Msg("failed to check national id")

			return res, fmt.Errorf("failed to check national id: %w", err)
		}

		if taken {
			return res, failure.Conflict(msgDuplicateNationalID) //nolint:wrapcheck
		}
	}

	affected, err := s.repo.Update(ctx, shared.TransformFields(req), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update patient")

		return res, failure.ConflictFromUniqueViolation(err, msgDuplicateNationalID) //nolint:wrapcheck
	}

	if affected == 0 {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	patient, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated patient")

		return res, fmt.Errorf("failed to get updated patient: %w", err)
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionUpdated)

	res.FromModel(patient)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.SoftDelete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete patient")

		return fmt.Errorf("failed to delete patient: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionDeleted)

	return nil
}

// HardDelete removes the row permanently, whether or not it was already
// soft deleted.
func (s *serviceImpl) HardDelete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient.HardDelete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to hard delete patient")

		return fmt.Errorf("failed to hard delete patient: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionDeleted)

	return nil
}

// filterByNationalID matches live rows holding the national id, optionally
// excluding the record being updated.
func filterByNationalID(nationalID, excludeID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldNationalID,
				Value:    nationalID,
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
