package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hims/config"
	"hims/infras/otel"
	"hims/internal/domains/patientmedicalinfo/model"
	"hims/internal/domains/patientmedicalinfo/model/dto"
	"hims/internal/domains/patientmedicalinfo/repository"
	"hims/internal/events"
	"hims/shared"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	"hims/shared/failure"
)

const (
	msgNotFound         = "patient medical info not found"
	msgDuplicatePatient = "medical info already exists for patient"
)

type PatientMedicalInfo interface {
	Create(ctx context.Context, req dto.CreatePatientMedicalInfoRequest) (dto.PatientMedicalInfoResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]dto.PatientMedicalInfoResponse, gDto.Pagination, error)
	Get(ctx context.Context, id string) (dto.PatientMedicalInfoResponse, error)
	GetByPatientID(ctx context.Context, patientID string) (dto.PatientMedicalInfoResponse, error)
	Update(ctx context.Context, req dto.UpdatePatientMedicalInfoRequest, id string) (dto.PatientMedicalInfoResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.PatientMedicalInfo
	publisher events.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.PatientMedicalInfo, publisher events.Publisher, cfg *config.Config, otel otel.Otel) PatientMedicalInfo {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePatientMedicalInfoRequest) (res dto.PatientMedicalInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient_medical_info.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := s.repo.Exist(ctx, shared.FilterByID(req.PatientID, model.FieldPatientID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check patient medical info")

		return res, fmt.Errorf("failed to check patient medical info: %w", err)
	}

	if taken {
		return res, failure.Conflict(msgDuplicatePatient) //nolint:wrapcheck
	}

	info := req.ToModel()

	if err = s.repo.Insert(ctx, info); err != nil {
		log.Error().Err(err).Msg("failed to create patient medical info")

		return res, failure.ConflictFromUniqueViolation(err, msgDuplicatePatient) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, info.ID, events.ActionCreated)

	res.FromModel(info)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.PatientMedicalInfoResponse, pagination gDto.Pagination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient_medical_info.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count patient medical infos")

		return res, pagination, fmt.Errorf("failed to count patient medical infos: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get patient medical infos")

		return res, pagination, fmt.Errorf("failed to get patient medical infos: %w", err)
	}

	return dto.FromModels(models), gDto.NewPagination(params, total), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PatientMedicalInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient_medical_info.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	info, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get patient medical info")

		return res, fmt.Errorf("failed to get patient medical info: %w", err)
	}

	if info.ID == "" {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	res.FromModel(info)

	return res, nil
}

// GetByPatientID resolves the single live record belonging to a patient.
func (s *serviceImpl) GetByPatientID(ctx context.Context, patientID string) (res dto.PatientMedicalInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient_medical_info.GetByPatientID")
	defer scope.End()
	defer scope.TraceIfError(err)

	info, err := s.repo.Get(ctx, shared.FilterByID(patientID, model.FieldPatientID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get patient medical info")

		return res, fmt.Errorf("failed to get patient medical info: %w", err)
	}

	if info.ID == "" {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	res.FromModel(info)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePatientMedicalInfoRequest, id string) (res dto.PatientMedicalInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient_medical_info.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return s.Get(ctx, id)
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	affected, err := s.repo.Update(ctx, shared.TransformFields(req), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update patient medical info")

		return res, fmt.Errorf("failed to update patient medical info: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	info, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated patient medical info")

		return res, fmt.Errorf("failed to get updated patient medical info: %w", err)
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionUpdated)

	res.FromModel(info)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".patient_medical_info.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.SoftDelete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete patient medical info")

		return fmt.Errorf("failed to delete patient medical info: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	s.publisher.RecordChange(ctx, model.EntityName, id, events.ActionDeleted)

	return nil
}
