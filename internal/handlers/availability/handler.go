package availability

import (
	"agenda/infras/otel"
	"agenda/internal/domains/availability/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/timezone"
	"agenda/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// calendarWindowDays is the default calendar length after from.
const calendarWindowDays = 13

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/companies/{id}/availability", handler.GetDay)
	router.Get("/companies/{id}/calendar", handler.GetCalendar)
}

// GetDay returns the open time of a date and, for a service, the bookable start times.
// @Summary Get availability for a date
// @Tags Availability
// @Produce json
// @Param id path string true "Company ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param service_id query string false "Service to compute slots for"
// @Success 200 {object} response.Data[dto.DayResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/companies/{id}/availability [get]
func (handler *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDay")
	defer scope.End()

	date, err := gDto.DayParam(r, constant.RequestParamDate, timezone.Today())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	companyID := chi.URLParam(r, constant.RequestParamID)
	serviceID := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamServiceID))

	res, err := handler.service.Day(ctx, companyID, date, serviceID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", companyID).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCalendar returns the open time of every date in a range.
// @Summary Get availability calendar
// @Tags Availability
// @Produce json
// @Param id path string true "Company ID"
// @Param from query string false "First date, YYYY-MM-DD, defaults to today"
// @Param to query string false "Last date, YYYY-MM-DD, defaults to 13 days after from"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/companies/{id}/calendar [get]
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	from, err := gDto.DayParam(r, constant.RequestParamFrom, timezone.Today())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	to, err := gDto.DayParam(r, constant.RequestParamTo, from.AddDate(0, 0, calendarWindowDays))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	companyID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Calendar(ctx, companyID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", companyID).Msg("failed to get calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
