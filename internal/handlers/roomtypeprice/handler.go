package roomtypeprice

import (
	"net/http"

	"hims/infras/otel"
	"hims/internal/domains/roomtypeprice/model"
	"hims/internal/domains/roomtypeprice/model/dto"
	"hims/internal/domains/roomtypeprice/service"
	"hims/shared"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	"hims/shared/validator"
	"hims/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomTypePrice
	otel    otel.Otel
}

func New(service service.RoomTypePrice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-type-prices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomTypePrice)
		routerGroup.Get("/", handler.GetRoomTypePrices)
		routerGroup.Get("/{id}", handler.GetRoomTypePriceByID)
		routerGroup.Put("/{id}", handler.UpdateRoomTypePrice)
		routerGroup.Delete("/{id}", handler.DeleteRoomTypePrice)
	})
}

// CreateRoomTypePrice registers pricing for a room type.
// @Summary Create a room type price
// @Description Register pricing for a room type. Each room type can be priced once.
// @Tags RoomTypePrice
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypePriceRequest true "Create Room Type Price Request"
// @Success 201 {object} dto.RoomTypePriceResponse "Room type price created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-type-prices [post]
func (handler *Handler) CreateRoomTypePrice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomTypePrice")
	defer scope.End()

	req := dto.CreateRoomTypePriceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	price, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type price")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room type price created successfully")

	response.WithJSON(writer, http.StatusCreated, price)
}

// GetRoomTypePrices retrieves room type prices with optional filtering.
// @Summary Get all room type prices
// @Description Retrieve room type prices sorted by room type, with optional search and active filter.
// @Tags RoomTypePrice
// @Accept json
// @Produce json
// @Param search query string false "Search across names and room type"
// @Param room_type query string false "Filter by room type"
// @Param is_active query boolean false "Filter by active status"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Paginated "List of room type prices"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-type-prices [get]
func (handler *Handler) GetRoomTypePrices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypePrices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterSearch(search, model.TableName, model.SearchFields...))
	}

	if roomType := r.URL.Query().Get(model.FieldRoomType); roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if isActive := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); isActive != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *isActive,
			Table:    model.TableName,
		})
	}

	prices, pagination, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type prices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type prices retrieved successfully")

	response.WithPaginated(w, http.StatusOK, prices, pagination)
}

// GetRoomTypePriceByID retrieves a room type price by its ID.
// @Summary Get a room type price by ID
// @Description Retrieve a room type price by its unique identifier.
// @Tags RoomTypePrice
// @Accept json
// @Produce json
// @Param id path string true "Room Type Price ID"
// @Success 200 {object} dto.RoomTypePriceResponse "Room type price details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-type-prices/{id} [get]
func (handler *Handler) GetRoomTypePriceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypePriceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	price, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type price by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type price retrieved successfully")

	response.WithJSON(w, http.StatusOK, price)
}

// UpdateRoomTypePrice applies a partial update to a room type price.
// @Summary Update a room type price by ID
// @Description Update the provided fields of an existing room type price. Omitted fields are left unchanged.
// @Tags RoomTypePrice
// @Accept json
// @Produce json
// @Param id path string true "Room Type Price ID"
// @Param request body dto.UpdateRoomTypePriceRequest true "Update Room Type Price Request"
// @Success 200 {object} dto.RoomTypePriceResponse "Updated room type price"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-type-prices/{id} [put]
func (handler *Handler) UpdateRoomTypePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomTypePrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomTypePriceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	price, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type price")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type price updated successfully")

	response.WithJSON(w, http.StatusOK, price)
}

// DeleteRoomTypePrice removes a room type price by its ID.
// @Summary Delete a room type price by ID
// @Description Remove a room type price row from storage.
// @Tags RoomTypePrice
// @Accept json
// @Produce json
// @Param id path string true "Room Type Price ID"
// @Success 204 "Room type price deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-type-prices/{id} [delete]
func (handler *Handler) DeleteRoomTypePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomTypePrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room type price")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type price deleted successfully")

	response.WithNoContent(w)
}
