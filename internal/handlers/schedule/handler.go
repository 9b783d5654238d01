package schedule

import (
	"agenda/infras/otel"
	"agenda/internal/domains/schedule/model/dto"
	"agenda/internal/domains/schedule/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/identity"
	"agenda/shared/timezone"
	"agenda/shared/validator"
	"agenda/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// exceptionWindowDays is how far ahead exceptions are listed when no range is given.
const exceptionWindowDays = 90

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/companies/{id}/schedule", handler.GetWeekly)
	router.Put("/companies/{id}/schedule", handler.PutWeekly)
	router.Get("/companies/{id}/exceptions", handler.GetExceptions)
	router.Put("/companies/{id}/exceptions", handler.PutException)
	router.Delete("/exceptions/{id}", handler.DeleteException)
}

// GetWeekly returns the weekly opening rules.
// @Summary Get weekly schedule
// @Tags Schedule
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} response.Data[[]dto.WeeklyRuleResponse]
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id}/schedule [get]
func (handler *Handler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeekly")
	defer scope.End()

	companyID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ListWeekly(ctx, companyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", companyID).Msg("failed to list weekly schedule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PutWeekly upserts weekly rules, one per weekday.
// @Summary Set weekly schedule
// @Description Weekdays not present in the request keep their current rule.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body dto.PutWeeklyRequest true "Weekly rules"
// @Success 200 {object} response.Data[[]dto.WeeklyRuleResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/companies/{id}/schedule [put]
// @Security BearerAuth
func (handler *Handler) PutWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PutWeekly")
	defer scope.End()

	req := dto.PutWeeklyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	companyID := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.PutWeekly(ctx, caller, companyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", companyID).Msg("failed to put weekly schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Weekly schedule updated by user " + caller.UserID)

	response.WithJSON(w, http.StatusOK, res)
}

// GetExceptions lists date exceptions in a range.
// @Summary List schedule exceptions
// @Tags Schedule
// @Produce json
// @Param id path string true "Company ID"
// @Param from query string false "First date, YYYY-MM-DD, defaults to today"
// @Param to query string false "Last date, YYYY-MM-DD, defaults to 90 days after from"
// @Success 200 {object} response.Data[[]dto.ExceptionResponse]
// @Failure 400 {object} response.Error
// @Router /v1/companies/{id}/exceptions [get]
func (handler *Handler) GetExceptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExceptions")
	defer scope.End()

	from, err := gDto.DayParam(r, constant.RequestParamFrom, timezone.Today())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	to, err := gDto.DayParam(r, constant.RequestParamTo, from.AddDate(0, 0, exceptionWindowDays))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	companyID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ListExceptions(ctx, companyID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", companyID).Msg("failed to list exceptions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PutException sets the exception of one date, replacing any existing one.
// @Summary Set schedule exception
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body dto.PutExceptionRequest true "Exception"
// @Success 200 {object} response.Data[dto.ExceptionResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/companies/{id}/exceptions [put]
// @Security BearerAuth
func (handler *Handler) PutException(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PutException")
	defer scope.End()

	req := dto.PutExceptionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	companyID := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.PutException(ctx, caller, companyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", companyID).Msg("failed to put exception")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Exception " + req.Date + " set by user " + caller.UserID)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteException removes a date exception.
// @Summary Delete schedule exception
// @Tags Schedule
// @Produce json
// @Param id path string true "Exception ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/exceptions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteException(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteException")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	if err := handler.service.DeleteException(ctx, caller, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete exception")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Exception deleted successfully")
}
