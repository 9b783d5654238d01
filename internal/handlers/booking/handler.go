package booking

import (
	"agenda/infras/otel"
	"agenda/internal/domains/booking/model/dto"
	"agenda/internal/domains/booking/service"
	"agenda/shared/constant"
	"agenda/shared/identity"
	"agenda/shared/validator"
	"agenda/transport/http/middleware"
	"agenda/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bookings
	intake  middleware.IntakeLimiter
	otel    otel.Otel
}

func New(service service.Bookings, intake middleware.IntakeLimiter, otel otel.Otel) Handler {
	return Handler{
		service: service,
		intake:  intake,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.intake.Limit).Post("/bookings", handler.CreateBooking)
	router.Get("/bookings/mybookings", handler.GetMyBookings)
	router.Get("/bookings/{id}", handler.GetBooking)
	router.Patch("/bookings/{id}/status", handler.UpdateStatus)
	router.Get("/companies/{id}/bookings", handler.GetCompanyBookings)
}

// CreateBooking submits a booking request for a service.
// @Summary Create booking
// @Description The request is checked against the company's open time and existing bookings
// @Description and stored as pending. Conflicts carry a reason: outside_business_hours or time_slot_unavailable.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.Create(ctx, caller, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", req.CompanyID).Str("date", req.BookingDate).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + res.ID + " created by " + caller.Actor())

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMyBookings lists the caller's own bookings.
// @Summary List my bookings
// @Tags Booking
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Param status query string false "pending, confirmed, cancelled or completed"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/bookings/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	req := dto.ListRequest{}
	req.FromRequest(r)

	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.ListMine(ctx, caller, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list own bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCompanyBookings lists the bookings of a company for its owner.
// @Summary List company bookings
// @Tags Booking
// @Produce json
// @Param id path string true "Company ID"
// @Param date query string false "YYYY-MM-DD"
// @Param status query string false "pending, confirmed, cancelled or completed"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/companies/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetCompanyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanyBookings")
	defer scope.End()

	req := dto.ListRequest{}
	req.FromRequest(r)

	companyID := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.ListForCompany(ctx, caller, companyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", companyID).Msg("failed to list company bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBooking returns one booking to its client or the company owner.
// @Summary Get booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.Get(ctx, caller, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateStatus moves a booking through its lifecycle.
// @Summary Change booking status
// @Description pending may become confirmed or cancelled, confirmed may become cancelled or completed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.UpdateStatus(ctx, caller, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("status", string(req.Status)).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + id + " moved to " + string(req.Status) + " by user " + caller.UserID)

	response.WithJSON(w, http.StatusOK, res)
}
