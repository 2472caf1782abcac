package patientmedicalinfo

import (
	"net/http"

	"hims/infras/otel"
	"hims/internal/domains/patientmedicalinfo/model"
	"hims/internal/domains/patientmedicalinfo/model/dto"
	"hims/internal/domains/patientmedicalinfo/service"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	"hims/shared/validator"
	"hims/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PatientMedicalInfo
	otel    otel.Otel
}

func New(service service.PatientMedicalInfo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/patient-medical-infos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePatientMedicalInfo)
		routerGroup.Get("/", handler.GetPatientMedicalInfos)
		routerGroup.Get("/{id}", handler.GetPatientMedicalInfoByID)
		routerGroup.Get("/patient/{patientId}", handler.GetPatientMedicalInfoByPatientID)
		routerGroup.Put("/{id}", handler.UpdatePatientMedicalInfo)
		routerGroup.Delete("/{id}", handler.DeletePatientMedicalInfo)
	})
}

// CreatePatientMedicalInfo registers medical information for a patient.
// @Summary Create patient medical info
// @Description Register medical information for a patient. Each patient can hold one live record.
// @Tags PatientMedicalInfo
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientMedicalInfoRequest true "Create Patient Medical Info Request"
// @Success 201 {object} dto.PatientMedicalInfoResponse "Patient medical info created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patient-medical-infos [post]
func (handler *Handler) CreatePatientMedicalInfo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePatientMedicalInfo")
	defer scope.End()

	req := dto.CreatePatientMedicalInfoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	info, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create patient medical info")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Patient medical info created successfully")

	response.WithJSON(writer, http.StatusCreated, info)
}

// GetPatientMedicalInfos retrieves patient medical info records with pagination.
// @Summary Get all patient medical info records
// @Description Retrieve patient medical info records with optional patient and blood group filters.
// @Tags PatientMedicalInfo
// @Accept json
// @Produce json
// @Param patient_id query string false "Filter by patient ID"
// @Param blood_group query string false "Filter by blood group"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Paginated "List of patient medical info records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patient-medical-infos [get]
func (handler *Handler) GetPatientMedicalInfos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatientMedicalInfos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if patientID := r.URL.Query().Get(model.FieldPatientID); patientID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPatientID,
			Operator: gDto.FilterOperatorEq,
			Value:    patientID,
			Table:    model.TableName,
		})
	}

	if bloodGroup := r.URL.Query().Get(model.FieldBloodGroup); bloodGroup != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBloodGroup,
			Operator: gDto.FilterOperatorEq,
			Value:    bloodGroup,
			Table:    model.TableName,
		})
	}

	infos, pagination, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patient medical infos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient medical infos retrieved successfully")

	response.WithPaginated(w, http.StatusOK, infos, pagination)
}

// GetPatientMedicalInfoByID retrieves a patient medical info record by its ID.
// @Summary Get patient medical info by ID
// @Description Retrieve a patient medical info record by its unique identifier.
// @Tags PatientMedicalInfo
// @Accept json
// @Produce json
// @Param id path string true "Patient Medical Info ID"
// @Success 200 {object} dto.PatientMedicalInfoResponse "Patient medical info details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patient-medical-infos/{id} [get]
func (handler *Handler) GetPatientMedicalInfoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatientMedicalInfoByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	info, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patient medical info by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient medical info retrieved successfully")

	response.WithJSON(w, http.StatusOK, info)
}

// GetPatientMedicalInfoByPatientID retrieves the live medical info record of a patient.
// @Summary Get patient medical info by patient ID
// @Description Retrieve the live medical info record belonging to the given patient.
// @Tags PatientMedicalInfo
// @Accept json
// @Produce json
// @Param patientId path string true "Patient ID"
// @Success 200 {object} dto.PatientMedicalInfoResponse "Patient medical info details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patient-medical-infos/patient/{patientId} [get]
func (handler *Handler) GetPatientMedicalInfoByPatientID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatientMedicalInfoByPatientID")
	defer scope.End()

	patientID := chi.URLParam(r, constant.RequestParamPatientID)

	info, err := handler.service.GetByPatientID(ctx, patientID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patient medical info by patient ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient medical info retrieved successfully")

	response.WithJSON(w, http.StatusOK, info)
}

// UpdatePatientMedicalInfo applies a partial update to a patient medical info record.
// @Summary Update patient medical info by ID
// @Description Update the provided fields of an existing record. Omitted fields are left unchanged.
// @Tags PatientMedicalInfo
// @Accept json
// @Produce json
// @Param id path string true "Patient Medical Info ID"
// @Param request body dto.UpdatePatientMedicalInfoRequest true "Update Patient Medical Info Request"
// @Success 200 {object} dto.PatientMedicalInfoResponse "Updated patient medical info"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patient-medical-infos/{id} [put]
func (handler *Handler) UpdatePatientMedicalInfo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePatientMedicalInfo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePatientMedicalInfoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	info, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update patient medical info")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient medical info updated successfully")

	response.WithJSON(w, http.StatusOK, info)
}

// DeletePatientMedicalInfo soft deletes a patient medical info record by its ID.
// @Summary Delete patient medical info by ID
// @Description Soft delete a patient medical info record.
// @Tags PatientMedicalInfo
// @Accept json
// @Produce json
// @Param id path string true "Patient Medical Info ID"
// @Success 204 "Patient medical info deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patient-medical-infos/{id} [delete]
func (handler *Handler) DeletePatientMedicalInfo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePatientMedicalInfo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete patient medical info")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient medical info deleted successfully")

	response.WithNoContent(w)
}
