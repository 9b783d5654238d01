package catalog

import (
	"agenda/infras/otel"
	"agenda/internal/domains/catalog/model/dto"
	"agenda/internal/domains/catalog/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/identity"
	"agenda/shared/validator"
	"agenda/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/companies/{id}/services", handler.GetServices)
	router.Post("/companies/{id}/services", handler.CreateService)

	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Patch("/{id}", handler.UpdateService)
		routerGroup.Delete("/{id}", handler.DeleteService)
	})
}

// GetServices lists the services a company offers.
// @Summary List company services
// @Description Inactive services are only listed for the owner.
// @Tags Service
// @Produce json
// @Param id path string true "Company ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetServicesResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id}/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	companyID := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.ListByCompany(ctx, caller, companyID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", companyID).Msg("failed to list services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateService adds a bookable service.
// @Summary Create service
// @Tags Service
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body dto.CreateServiceRequest true "Service"
// @Success 201 {object} response.Data[dto.ServiceResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/companies/{id}/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	companyID := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.Create(ctx, caller, companyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("company_id", companyID).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service created by user " + caller.UserID)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateService patches a service.
// @Summary Update service
// @Tags Service
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	req := dto.UpdateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	if err := handler.service.Update(ctx, caller, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service updated successfully")
}

// DeleteService removes a service.
// @Summary Delete service
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	if err := handler.service.Delete(ctx, caller, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service deleted by user " + caller.UserID)

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}
