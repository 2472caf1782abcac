package patient

import (
	"net/http"

	"hims/infras/otel"
	"hims/internal/domains/patient/model"
	"hims/internal/domains/patient/model/dto"
	"hims/internal/domains/patient/service"
	"hims/shared"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	"hims/shared/validator"
	"hims/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Patient
	otel    otel.Otel
}

func New(service service.Patient, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/patients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePatient)
		routerGroup.Get("/", handler.GetPatients)
		routerGroup.Get("/{id}", handler.GetPatientByID)
		routerGroup.Put("/{id}", handler.UpdatePatient)
		routerGroup.Delete("/{id}", handler.DeletePatient)
		routerGroup.Delete("/{id}/hard", handler.HardDeletePatient)
	})
}

// CreatePatient registers a new patient record.
// @Summary Create a new patient
// @Description Register a new patient with the provided details.
// @Tags Patient
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} dto.PatientResponse "Patient created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients [post]
func (handler *Handler) CreatePatient(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePatient")
	defer scope.End()

	req := dto.CreatePatientRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	patient, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create patient")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Patient created successfully")

	response.WithJSON(writer, http.StatusCreated, patient)
}

// GetPatients retrieves patients with optional filtering and pagination.
// @Summary Get all patients
// @Description Retrieve patients with optional free-text search, gender filter, and pagination.
// @Tags Patient
// @Accept json
// @Produce json
// @Param search query string false "Search across name, nickname, phone, and national ID"
// @Param gender query string false "Filter by gender"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Paginated "List of patients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients [get]
func (handler *Handler) GetPatients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterSearch(search, model.TableName, model.SearchFields...))
	}

	if gender := r.URL.Query().Get(model.FieldGender); gender != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGender,
			Operator: gDto.FilterOperatorEq,
			Value:    gender,
			Table:    model.TableName,
		})
	}

	patients, pagination, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patients retrieved successfully")

	response.WithPaginated(w, http.StatusOK, patients, pagination)
}

// GetPatientByID retrieves a patient by its ID.
// @Summary Get a patient by ID
// @Description Retrieve a patient by its unique identifier.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} dto.PatientResponse "Patient details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id} [get]
func (handler *Handler) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatientByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	patient, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patient by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient retrieved successfully")

	response.WithJSON(w, http.StatusOK, patient)
}

// UpdatePatient applies a partial update to a patient record.
// @Summary Update a patient by ID
// @Description Update the provided fields of an existing patient. Omitted fields are left unchanged.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} dto.PatientResponse "Updated patient"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id} [put]
func (handler *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePatient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePatientRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	patient, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update patient")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient updated successfully")

	response.WithJSON(w, http.StatusOK, patient)
}

// DeletePatient soft deletes a patient by its ID.
// @Summary Delete a patient by ID
// @Description Soft delete a patient. The record is retained but excluded from reads.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 204 "Patient deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id} [delete]
func (handler *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePatient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete patient")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient deleted successfully")

	response.WithNoContent(w)
}

// HardDeletePatient permanently removes a patient by its ID.
// @Summary Permanently delete a patient by ID
// @Description Remove a patient row from storage, including soft-deleted records.
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Success 204 "Patient permanently deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/patients/{id}/hard [delete]
func (handler *Handler) HardDeletePatient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HardDeletePatient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.HardDelete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to hard delete patient")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient permanently deleted")

	response.WithNoContent(w)
}
