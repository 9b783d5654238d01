package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agenda/config"
	"agenda/infras/otel"
	"agenda/infras/s3"
	"agenda/internal/domains/company/model"
	"agenda/internal/domains/company/model/dto"
	"agenda/internal/domains/company/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/identity"
	gRepo "agenda/shared/repository"
	"agenda/shared/timezone"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCompany    = "company:get"
	cacheSearchCompany = "company:search"

	logoDirectory = "companies"
)

type Directory interface {
	Create(ctx context.Context, caller identity.Identity, req dto.CreateCompanyRequest) (dto.CompanyResponse, error)
	Get(ctx context.Context, caller identity.Identity, id string) (dto.CompanyResponse, error)
	GetMine(ctx context.Context, caller identity.Identity) (dto.CompanyResponse, error)
	Update(ctx context.Context, caller identity.Identity, id string, req dto.UpdateCompanyRequest) error
	Delete(ctx context.Context, caller identity.Identity, id string) error
	UploadLogo(ctx context.Context, caller identity.Identity, id string, req dto.UploadLogoRequest) (string, error)
	Search(ctx context.Context, req dto.SearchRequest) (dto.GetCompaniesResponse, error)
	// Authorize loads the company and checks that the caller may manage it.
	Authorize(ctx context.Context, caller identity.Identity, companyID string) (model.Company, error)
	// GetActive loads a company that accepts bookings.
	GetActive(ctx context.Context, companyID string) (model.Company, error)
}

type serviceImpl struct {
	repo    repository.Company
	cfg     *config.Config
	cache   cache.RedisCache
	storage s3.S3
	otel    otel.Otel
}

func New(repo repository.Company, cfg *config.Config, cache cache.RedisCache, storage s3.S3, otel otel.Otel) Directory {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, caller identity.Identity, req dto.CreateCompanyRequest) (res dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if caller.IsZero() {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(caller.UserID, model.FieldOwnerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing company")

		return res, fmt.Errorf("failed to check existing company: %w", err)
	}

	if exist {
		return res, failure.Conflict("owner already has a company") // nolint:wrapcheck
	}

	company := req.ToModel(caller.UserID)

	if err = s.repo.Insert(ctx, company); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("owner already has a company") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create company")

		return res, fmt.Errorf("failed to create company: %w", err)
	}

	s.invalidate(ctx, company.ID)

	res.FromModel(company)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, caller identity.Identity, id string) (res dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCompany, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		company, err := s.load(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(company)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save company to cache")
			}
		}()
	} else {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for company")
	}

	// inactive companies are only visible to their owner
	if !res.IsActive && res.OwnerID != caller.UserID && !caller.HasRole(constant.RoleAdmin) {
		return dto.CompanyResponse{}, failure.NotFound("company not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, caller identity.Identity) (res dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company.GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	if caller.IsZero() {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	company, err := s.repo.Get(ctx, shared.FilterByID(caller.UserID, model.FieldOwnerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get own company")

		return res, fmt.Errorf("failed to get own company: %w", err)
	}

	if company.ID == constant.Empty {
		return res, failure.NotFound("company not found") // nolint:wrapcheck
	}

	res.FromModel(company)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, caller identity.Identity, id string, req dto.UpdateCompanyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Authorize(ctx, caller, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.ToUpdateMap(caller.Actor()), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update company")

		return fmt.Errorf("failed to update company: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, caller identity.Identity, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	company, err := s.Authorize(ctx, caller, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete company")

		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.invalidate(ctx, id)

	if company.LogoURL != constant.Empty {
		go s.deleteLogo(context.WithoutCancel(ctx), company.LogoURL)
	}

	return nil
}

func (s *serviceImpl) UploadLogo(ctx context.Context, caller identity.Identity, id string, req dto.UploadLogoRequest) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company.UploadLogo")
	defer scope.End()
	defer scope.TraceIfError(err)

	company, err := s.Authorize(ctx, caller, id)
	if err != nil {
		return constant.Empty, err
	}

	file, err := req.File.Open()
	if err != nil {
		return constant.Empty, failure.BadRequest(fmt.Errorf("failed to open logo: %w", err)) // nolint:wrapcheck
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return constant.Empty, failure.BadRequest(fmt.Errorf("failed to read logo: %w", err)) // nolint:wrapcheck
	}

	objectKey := path.Join(logoDirectory, id, "logo-"+uuid.NewString()+filepath.Ext(req.File.Filename))
	contentType := req.File.Header.Get(constant.RequestHeaderContentType)

	url, err = s.storage.PutObject(ctx, objectKey, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload company logo")

		return constant.Empty, fmt.Errorf("failed to upload company logo: %w", err)
	}

	update := map[string]any{
		model.FieldLogoURL:       url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: caller.Actor(),
	}

	if err = s.repo.Update(ctx, update, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to save company logo")

		go s.deleteLogo(context.WithoutCancel(ctx), url)

		return constant.Empty, fmt.Errorf("failed to save company logo: %w", err)
	}

	s.invalidate(ctx, id)

	if company.LogoURL != constant.Empty {
		go s.deleteLogo(context.WithoutCancel(ctx), company.LogoURL)
	}

	return url, nil
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.GetCompaniesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	// most recently created first, regardless of requested sort
	params := req.QueryParams
	params.SortBy = model.TableName + "." + constant.FieldCreatedAt
	params.SortDir = constant.DefaultValueSortDir

	filter := req.ToFilter()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheSearchCompany, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for company search")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count companies")

		return res, fmt.Errorf("failed to count companies: %w", err)
	}

	companies, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search companies")

		return res, fmt.Errorf("failed to search companies: %w", err)
	}

	res.FromModels(companies, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save company search to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Authorize(ctx context.Context, caller identity.Identity, companyID string) (company model.Company, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company.Authorize")
	defer scope.End()
	defer scope.TraceIfError(err)

	if caller.IsZero() {
		return company, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	company, err = s.load(ctx, companyID)
	if err != nil {
		return company, err
	}

	if !company.OwnedBy(caller.UserID) && !caller.HasRole(constant.RoleAdmin) {
		return model.Company{}, failure.ResourceRestrictedError
	}

	return company, nil
}

func (s *serviceImpl) GetActive(ctx context.Context, companyID string) (company model.Company, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company.GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	company, err = s.load(ctx, companyID)
	if err != nil {
		return company, err
	}

	if !company.IsActive {
		return model.Company{}, failure.NotFound("company not found") // nolint:wrapcheck
	}

	return company, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Company, error) {
	company, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("company_id", id).Msg("failed to get company")

		return company, fmt.Errorf("failed to get company: %w", err)
	}

	if company.ID == constant.Empty {
		return company, failure.NotFound("company not found") // nolint:wrapcheck
	}

	return company, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetCompany, id), cacheSearchCompany)
	}()
}

func (s *serviceImpl) deleteLogo(ctx context.Context, url string) {
	objectKey := s.storage.ObjectKeyFromURL(url)
	if objectKey == constant.Empty {
		return
	}

	if err := s.storage.DeleteObject(ctx, objectKey); err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete company logo")
	}
}
