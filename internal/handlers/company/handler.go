package company

import (
	"agenda/infras/otel"
	"agenda/internal/domains/company/model/dto"
	"agenda/internal/domains/company/service"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/identity"
	"agenda/shared/validator"
	"agenda/transport/http/response"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Directory
	otel    otel.Otel
}

func New(service service.Directory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers flat paths because other handlers also hang routes under /companies/{id}.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/companies", handler.SearchCompanies)
	router.Post("/companies", handler.CreateCompany)
	router.Get("/companies/me", handler.GetMyCompany)
	router.Get("/companies/{id}", handler.GetCompany)
	router.Patch("/companies/{id}", handler.UpdateCompany)
	router.Delete("/companies/{id}", handler.DeleteCompany)
	router.Put("/companies/{id}/logo", handler.UploadLogo)
}

// SearchCompanies lists active companies matching the query.
// @Summary Search companies
// @Description Case-insensitive search over name, description, category and tags, with optional tag and city filters.
// @Tags Company
// @Produce json
// @Param q query string false "Free text"
// @Param tags query string false "Comma separated tags, any match"
// @Param city query string false "City substring"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCompaniesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies [get]
func (handler *Handler) SearchCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchCompanies")
	defer scope.End()

	req := dto.SearchRequest{}
	req.FromRequest(r)

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search companies")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateCompany registers the caller's company.
// @Summary Create company
// @Description An owner may register a single company.
// @Tags Company
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Company"
// @Success 201 {object} response.Data[dto.CompanyResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies [post]
// @Security BearerAuth
func (handler *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCompany")
	defer scope.End()

	req := dto.CreateCompanyRequest{}
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
		log.Error().Err(err).Msg("failed to create company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company created by user " + caller.UserID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMyCompany returns the company owned by the caller.
// @Summary Get own company
// @Tags Company
// @Produce json
// @Success 200 {object} response.Data[dto.CompanyResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/companies/me [get]
// @Security BearerAuth
func (handler *Handler) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyCompany")
	defer scope.End()

	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.GetMine(ctx, caller)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own company")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCompany returns a company profile.
// @Summary Get company
// @Tags Company
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} response.Data[dto.CompanyResponse]
// @Failure 404 {object} response.Error
// @Router /v1/companies/{id} [get]
func (handler *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompany")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	res, err := handler.service.Get(ctx, caller, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get company")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateCompany patches the company profile.
// @Summary Update company
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/companies/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCompany")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCompanyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	caller, _ := identity.FromContext(ctx)

	if err := handler.service.Update(ctx, caller, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company updated by user " + caller.UserID)

	response.WithMessage(w, http.StatusOK, "Company updated successfully")
}

// DeleteCompany removes the company.
// @Summary Delete company
// @Tags Company
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/companies/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCompany")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	if err := handler.service.Delete(ctx, caller, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company deleted by user " + caller.UserID)

	response.WithMessage(w, http.StatusOK, "Company deleted successfully")
}

// UploadLogo stores a new company logo.
// @Summary Upload company logo
// @Tags Company
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Company ID"
// @Param logo formData file true "PNG, JPEG or WebP up to 2 MB"
// @Success 200 {object} response.Data[dto.LogoResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/companies/{id}/logo [put]
// @Security BearerAuth
func (handler *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadLogo")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		err = failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err))
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormLogo)
	if err != nil {
		err = failure.BadRequest(fmt.Errorf("missing %s file: %w", constant.FormLogo, err))
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadLogoRequest{File: *fileHeader}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate logo")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	caller, _ := identity.FromContext(ctx)

	url, err := handler.service.UploadLogo(ctx, caller, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to upload logo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Logo uploaded by user " + caller.UserID)

	response.WithJSON(w, http.StatusOK, dto.LogoResponse{LogoURL: url})
}
