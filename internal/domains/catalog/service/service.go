package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/catalog/model"
	"agenda/internal/domains/catalog/model/dto"
	"agenda/internal/domains/catalog/repository"
	companyService "agenda/internal/domains/company/service"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/identity"
	gRepo "agenda/shared/repository"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheListService = "service:list"
)

type Catalog interface {
	Create(ctx context.Context, caller identity.Identity, companyID string, req dto.CreateServiceRequest) (dto.ServiceResponse, error)
	ListByCompany(ctx context.Context, caller identity.Identity, companyID string, params gDto.QueryParams) (dto.GetServicesResponse, error)
	Update(ctx context.Context, caller identity.Identity, id string, req dto.UpdateServiceRequest) error
	Delete(ctx context.Context, caller identity.Identity, id string) error
	// GetBookable returns an active service of the company.
	GetBookable(ctx context.Context, companyID, serviceID string) (model.Service, error)
}

type serviceImpl struct {
	repo      repository.Service
	companies companyService.Directory
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Service, companies companyService.Directory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:      repo,
		companies: companies,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, caller identity.Identity, companyID string, req dto.CreateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Price.IsNegative() {
		return res, failure.BadRequestFromString("price must not be negative") // nolint:wrapcheck
	}

	if _, err = s.companies.Authorize(ctx, caller, companyID); err != nil {
		return res, err
	}

	service := req.ToModel(companyID, caller.Actor())

	if err = s.repo.Insert(ctx, service); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidate(ctx, companyID)

	res.FromModel(service)

	return res, nil
}

func (s *serviceImpl) ListByCompany(ctx context.Context, caller identity.Identity, companyID string, params gDto.QueryParams) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.ListByCompany")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.RestrictSort(model.FieldName, model.FieldPrice, model.FieldDurationMinutes, constant.FieldCreatedAt)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCompanyID, Value: companyID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	// owners also see services they have switched off
	if !s.canManage(ctx, caller, companyID) {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheListService, companyID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	services, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(services, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, caller identity.Identity, id string, req dto.UpdateServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Price != nil && req.Price.IsNegative() {
		return failure.BadRequestFromString("price must not be negative") // nolint:wrapcheck
	}

	service, err := s.authorize(ctx, caller, id)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.ToUpdateMap(caller.Actor()), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidate(ctx, service.CompanyID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, caller identity.Identity, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.authorize(ctx, caller, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return failure.ConflictWithReason("service_has_bookings", "service has bookings, deactivate it instead") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.invalidate(ctx, service.CompanyID)

	return nil
}

func (s *serviceImpl) GetBookable(ctx context.Context, companyID, serviceID string) (service model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.GetBookable")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err = s.repo.Get(ctx, shared.FilterByID(serviceID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return service, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty || service.CompanyID != companyID || !service.IsActive {
		return model.Service{}, failure.NotFound("service not found") // nolint:wrapcheck
	}

	return service, nil
}

func (s *serviceImpl) authorize(ctx context.Context, caller identity.Identity, id string) (model.Service, error) {
	service, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return service, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return service, failure.NotFound("service not found") // nolint:wrapcheck
	}

	if _, err = s.companies.Authorize(ctx, caller, service.CompanyID); err != nil {
		return model.Service{}, err
	}

	return service, nil
}

func (s *serviceImpl) canManage(ctx context.Context, caller identity.Identity, companyID string) bool {
	if caller.IsZero() {
		return false
	}

	_, err := s.companies.Authorize(ctx, caller, companyID)

	return err == nil
}

func (s *serviceImpl) invalidate(ctx context.Context, companyID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheListService, companyID))
	}()
}
