package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/availability/engine"
	companyService "agenda/internal/domains/company/service"
	"agenda/internal/domains/schedule/model"
	"agenda/internal/domains/schedule/model/dto"
	"agenda/internal/domains/schedule/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/identity"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheWeekly = "weekly"
)

type Schedule interface {
	PutWeekly(ctx context.Context, caller identity.Identity, companyID string, req dto.PutWeeklyRequest) ([]dto.WeeklyRuleResponse, error)
	ListWeekly(ctx context.Context, companyID string) ([]dto.WeeklyRuleResponse, error)
	PutException(ctx context.Context, caller identity.Identity, companyID string, req dto.PutExceptionRequest) (dto.ExceptionResponse, error)
	ListExceptions(ctx context.Context, companyID string, from, to time.Time) ([]dto.ExceptionResponse, error)
	DeleteException(ctx context.Context, caller identity.Identity, id string) error

	// Rules and Exceptions feed the availability engine. Store failures come back as
	// engine.StoreUnavailable so callers never treat a failed read as an open day.
	Rules(ctx context.Context, companyID string) ([]engine.WeeklyRule, error)
	Exceptions(ctx context.Context, companyID string, from, to time.Time) ([]engine.Exception, error)
}

type serviceImpl struct {
	weekly     repository.Weekly
	exceptions repository.Exception
	companies  companyService.Directory
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(weekly repository.Weekly, exceptions repository.Exception, companies companyService.Directory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Schedule {
	return &serviceImpl{
		weekly:     weekly,
		exceptions: exceptions,
		companies:  companies,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) PutWeekly(ctx context.Context, caller identity.Identity, companyID string, req dto.PutWeeklyRequest) (res []dto.WeeklyRuleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule.PutWeekly")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = req.Validate(); err != nil {
		return nil, engine.AsFailure(err) // nolint:wrapcheck
	}

	if _, err = s.companies.Authorize(ctx, caller, companyID); err != nil {
		return nil, err
	}

	if err = s.weekly.UpsertAll(ctx, req.ToModels(companyID, caller.Actor())); err != nil {
		log.Error().Err(err).Msg("failed to save weekly schedule")

		return nil, fmt.Errorf("failed to save weekly schedule: %w", err)
	}

	s.invalidate(ctx, companyID)

	rules, err := s.listWeekly(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return dto.FromWeeklyModels(rules), nil
}

func (s *serviceImpl) ListWeekly(ctx context.Context, companyID string) (res []dto.WeeklyRuleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule.ListWeekly")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheSchedule, companyID, cacheWeekly)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for weekly schedule")

		return res, nil
	}

	rules, err := s.listWeekly(ctx, companyID)
	if err != nil {
		return nil, err
	}

	res = dto.FromWeeklyModels(rules)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save weekly schedule to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) PutException(ctx context.Context, caller identity.Identity, companyID string, req dto.PutExceptionRequest) (res dto.ExceptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule.PutException")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = req.Validate(); err != nil {
		return res, engine.AsFailure(err) // nolint:wrapcheck
	}

	exception, err := req.ToModel(companyID, caller.Actor())
	if err != nil {
		return res, engine.AsFailure(err) // nolint:wrapcheck
	}

	if _, err = s.companies.Authorize(ctx, caller, companyID); err != nil {
		return res, err
	}

	if err = s.exceptions.Put(ctx, exception); err != nil {
		log.Error().Err(err).Msg("failed to save schedule exception")

		return res, fmt.Errorf("failed to save schedule exception: %w", err)
	}

	s.invalidate(ctx, companyID)

	// the upsert keeps the id of an existing row on the same date
	stored, err := s.exceptions.Get(ctx, exceptionOn(companyID, exception.ExceptionDate))
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule exception")

		return res, fmt.Errorf("failed to get schedule exception: %w", err)
	}

	if stored.ID == constant.Empty {
		stored = exception
	}

	res.FromModel(stored)

	return res, nil
}

func (s *serviceImpl) ListExceptions(ctx context.Context, companyID string, from, to time.Time) (res []dto.ExceptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule.ListExceptions")
	defer scope.End()
	defer scope.TraceIfError(err)

	if to.Before(from) {
		return nil, failure.BadRequestFromString("from must not be after to") // nolint:wrapcheck
	}

	exceptions, err := s.listExceptions(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	return dto.FromExceptionModels(exceptions), nil
}

func (s *serviceImpl) DeleteException(ctx context.Context, caller identity.Identity, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule.DeleteException")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.ExceptionTableName)

	exception, err := s.exceptions.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule exception")

		return fmt.Errorf("failed to get schedule exception: %w", err)
	}

	if exception.ID == constant.Empty {
		return failure.NotFound("schedule exception not found") // nolint:wrapcheck
	}

	if _, err = s.companies.Authorize(ctx, caller, exception.CompanyID); err != nil {
		return err
	}

	if err = s.exceptions.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete schedule exception")

		return fmt.Errorf("failed to delete schedule exception: %w", err)
	}

	s.invalidate(ctx, exception.CompanyID)

	return nil
}

func (s *serviceImpl) Rules(ctx context.Context, companyID string) (rules []engine.WeeklyRule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule.Rules")
	defer scope.End()
	defer scope.TraceIfError(err)

	stored, err := s.listWeekly(ctx, companyID)
	if err != nil {
		return nil, engine.Unavailable("load weekly schedule", err) // nolint:wrapcheck
	}

	rules = make([]engine.WeeklyRule, 0, len(stored))

	for _, m := range stored {
		rule, convErr := m.ToRule()
		if convErr != nil {
			log.Error().Err(convErr).Str("id", m.ID).Msg("skipping unreadable weekly schedule")

			continue
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

func (s *serviceImpl) Exceptions(ctx context.Context, companyID string, from, to time.Time) (exceptions []engine.Exception, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule.Exceptions")
	defer scope.End()
	defer scope.TraceIfError(err)

	stored, err := s.listExceptions(ctx, companyID, from, to)
	if err != nil {
		return nil, engine.Unavailable("load schedule exceptions", err) // nolint:wrapcheck
	}

	exceptions = make([]engine.Exception, 0, len(stored))

	for _, m := range stored {
		exception, convErr := m.ToException()
		if convErr != nil {
			// an unreadable exception must not fall back to the weekly rule
			exception = engine.Exception{Date: m.ExceptionDate, Closed: true}

			log.Error().Err(convErr).Str("id", m.ID).Msg("treating unreadable schedule exception as closed")
		}

		exceptions = append(exceptions, exception)
	}

	return exceptions, nil
}

func (s *serviceImpl) listWeekly(ctx context.Context, companyID string) ([]model.WeeklySchedule, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldCompanyID, Value: companyID, Operator: gDto.FilterOperatorEq, Table: model.WeeklyTableName},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldDayOfWeek, SortDir: gDto.SortDirAsc}

	rules, err := s.weekly.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly schedule")

		return nil, fmt.Errorf("failed to get weekly schedule: %w", err)
	}

	return rules, nil
}

func (s *serviceImpl) listExceptions(ctx context.Context, companyID string, from, to time.Time) ([]model.ScheduleException, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCompanyID, Value: companyID, Operator: gDto.FilterOperatorEq, Table: model.ExceptionTableName},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldExceptionDate,
				Value:    from.Format(constant.DayFormat),
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.ExceptionTableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldExceptionDate,
				Value:    to.Format(constant.DayFormat),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.ExceptionTableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldExceptionDate, SortDir: gDto.SortDirAsc}

	exceptions, err := s.exceptions.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule exceptions")

		return nil, fmt.Errorf("failed to get schedule exceptions: %w", err)
	}

	return exceptions, nil
}

func exceptionOn(companyID string, date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCompanyID, Value: companyID, Operator: gDto.FilterOperatorEq, Table: model.ExceptionTableName},
			gDto.Filter{Field: model.FieldExceptionDate, Value: date.Format(constant.DayFormat), Operator: gDto.FilterOperatorEq, Table: model.ExceptionTableName},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, companyID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache,
			shared.BuildCacheKey(constant.CacheSchedule, companyID),
			shared.BuildCacheKey(constant.CacheAvailability, companyID),
		)
	}()
}
