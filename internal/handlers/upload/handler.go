package upload

import (
	"net/http"

	"hims/infras/otel"
	"hims/internal/domains/upload/model/dto"
	"hims/internal/domains/upload/service"
	"hims/shared"
	"hims/shared/constant"
	"hims/shared/failure"
	"hims/shared/validator"
	"hims/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Upload
	otel    otel.Otel
}

func New(service service.Upload, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/upload", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadFile)
		routerGroup.Get("/signed-url", handler.GetSignedURL)
		routerGroup.Delete("/", handler.DeleteFile)
	})
}

// UploadFile stores a single multipart file in object storage.
// @Summary Upload a file
// @Description Upload one multipart file up to 5MB. Accepted types: jpeg, png, gif, webp, pdf.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param folder formData string false "Destination folder (defaults to public)"
// @Success 201 {object} dto.UploadResponse "File uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/upload [post]
func (handler *Handler) UploadFile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFile")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, header, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("missing file part in multipart form")

		response.WithError(writer, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	folder := request.FormValue(constant.FormFolder)

	res, err := handler.service.Upload(ctx, file, header, folder)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("File uploaded successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetSignedURL issues a presigned download URL for a stored object.
// @Summary Get a signed download URL
// @Description Generate a time-limited presigned URL for the given object key.
// @Tags Upload
// @Accept json
// @Produce json
// @Param key query string true "Object key"
// @Param expiresIn query int false "Expiry in seconds (defaults to 3600)"
// @Success 200 {object} dto.SignedURLResponse "Signed URL generated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/upload/signed-url [get]
func (handler *Handler) GetSignedURL(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSignedURL")
	defer scope.End()

	key := r.URL.Query().Get(constant.RequestParamKey)

	expiresIn := 0
	if value := shared.ConvertStringToInt(r.URL.Query().Get(constant.RequestParamExpiresIn)); value != nil {
		expiresIn = *value
	}

	res, err := handler.service.SignedURL(ctx, key, expiresIn)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate signed URL")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Signed URL generated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteFile removes a stored object by its key.
// @Summary Delete a file
// @Description Remove the object identified by the given key from storage.
// @Tags Upload
// @Accept json
// @Produce json
// @Param request body dto.DeleteUploadRequest true "Delete Upload Request"
// @Success 200 {object} response.Message "File deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/upload [delete]
func (handler *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFile")
	defer scope.End()

	req := dto.DeleteUploadRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req.Key); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete file")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("File deleted successfully")

	response.WithMessage(w, http.StatusOK, "File deleted successfully")
}
