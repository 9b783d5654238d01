package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agenda/config"
	"agenda/infras/kafka"
	"agenda/infras/otel"
	"agenda/internal/domains/availability/engine"
	"agenda/internal/domains/booking/model"
	"agenda/internal/domains/booking/model/dto"
	"agenda/internal/domains/booking/repository"
	catalogService "agenda/internal/domains/catalog/service"
	companyService "agenda/internal/domains/company/service"
	scheduleService "agenda/internal/domains/schedule/service"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/identity"
	"agenda/shared/timezone"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheBookingCompany = "booking:company"
	cacheBookingClient  = "booking:client"

	reasonInvalidTransition = "invalid_status_transition"
	reasonNotYetCompletable = "booking_not_started"
)

type Bookings interface {
	Create(ctx context.Context, caller identity.Identity, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, caller identity.Identity, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	ListForCompany(ctx context.Context, caller identity.Identity, companyID string, req dto.ListRequest) (dto.GetBookingsResponse, error)
	ListMine(ctx context.Context, caller identity.Identity, req dto.ListRequest) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, caller identity.Identity, id string) (dto.BookingResponse, error)
	// Blocking returns the pending and confirmed bookings of a company on date.
	Blocking(ctx context.Context, companyID string, date time.Time) ([]engine.Booked, error)
}

type serviceImpl struct {
	repo      repository.Booking
	catalog   catalogService.Catalog
	companies companyService.Directory
	schedule  scheduleService.Schedule
	events    kafka.Client
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	catalog catalogService.Catalog,
	companies companyService.Directory,
	schedule scheduleService.Schedule,
	events kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Bookings {
	return &serviceImpl{
		repo:      repo,
		catalog:   catalog,
		companies: companies,
		schedule:  schedule,
		events:    events,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, caller identity.Identity, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, start, err := req.Parse()
	if err != nil {
		return res, engine.AsFailure(err) // nolint:wrapcheck
	}

	service, err := s.catalog.GetBookable(ctx, req.CompanyID, req.ServiceID)
	if err != nil {
		return res, err
	}

	if _, err = s.companies.GetActive(ctx, req.CompanyID); err != nil {
		return res, err
	}

	proposed := engine.Interval{Start: start, End: engine.SlotEnd(start, service.DurationMinutes)}
	booking := req.ToModel(caller.UserID, date, proposed)

	err = s.repo.WithDayLock(ctx, req.CompanyID, date, func(tx repository.DayTx) error {
		open, err := s.openIntervals(ctx, req.CompanyID, date)
		if err != nil {
			return err
		}

		existing, err := tx.Blocking(ctx)
		if err != nil {
			return err
		}

		booked, err := model.BookedFrom(existing)
		if err != nil {
			log.Error().Err(err).Str("company", req.CompanyID).Msg("failed to read blocking bookings")

			return err
		}

		err = engine.IsLegalBooking(engine.LegalityInput{
			Date:     date,
			Proposed: proposed,
			Today:    timezone.Today(),
			Open:     open,
			Existing: booked,
		})
		if err != nil {
			return err
		}

		return tx.Insert(ctx, booking)
	})
	if err != nil {
		return res, s.intakeError(err)
	}

	log.Info().Str("booking", booking.ID).Str("company", booking.CompanyID).Msg("booking created")

	s.invalidate(ctx, booking)
	s.publish(ctx, dto.NewEvent(dto.EventBookingCreated, booking, constant.Empty))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, caller identity.Identity, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Status.IsValid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown status %q", req.Status)) // nolint:wrapcheck
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if _, err = s.companies.Authorize(ctx, caller, booking.CompanyID); err != nil {
		return res, err
	}

	from := booking.Status

	if !engine.CanTransition(from, req.Status) {
		return res, failure.ConflictWithReason(reasonInvalidTransition, // nolint:wrapcheck
			fmt.Sprintf("cannot move booking from %s to %s", from, req.Status))
	}

	if req.Status == engine.StatusCompleted && s.cfg.Booking.RequirePastForComplete &&
		booking.StartsAt(timezone.GetLocation()).After(timezone.Now()) {
		return res, failure.ConflictWithReason(reasonNotYetCompletable, "booking has not started yet") // nolint:wrapcheck
	}

	ok, err := s.repo.Transition(ctx, id, from, req.Status, caller.Actor())
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if !ok {
		return res, failure.ConflictWithReason(reasonInvalidTransition, "booking status changed concurrently") // nolint:wrapcheck
	}

	booking.Status = req.Status
	booking.ModifiedBy = caller.Actor()
	booking.ModifiedAt = timezone.Now()

	s.invalidate(ctx, booking)
	s.publish(ctx, dto.NewEvent(dto.EventBookingStatusChanged, booking, from))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ListForCompany(ctx context.Context, caller identity.Identity, companyID string, req dto.ListRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.ListForCompany")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.companies.Authorize(ctx, caller, companyID); err != nil {
		return res, err
	}

	scoped := gDto.Filter{Field: model.FieldCompanyID, Value: companyID, Operator: gDto.FilterOperatorEq, Table: model.TableName}

	return s.list(ctx, shared.BuildCacheKey(cacheBookingCompany, companyID), scoped, req)
}

func (s *serviceImpl) ListMine(ctx context.Context, caller identity.Identity, req dto.ListRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	if caller.IsZero() {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	scoped := gDto.Filter{Field: model.FieldClientUserID, Value: caller.UserID, Operator: gDto.FilterOperatorEq, Table: model.TableName}

	return s.list(ctx, shared.BuildCacheKey(cacheBookingClient, caller.UserID), scoped, req)
}

func (s *serviceImpl) Get(ctx context.Context, caller identity.Identity, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.BookedBy(caller.UserID) {
		if _, err = s.companies.Authorize(ctx, caller, booking.CompanyID); err != nil {
			return res, err
		}
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Blocking(ctx context.Context, companyID string, date time.Time) (booked []engine.Booked, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Blocking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCompanyID, Value: companyID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldBookingDate, Value: date.Format(constant.DayFormat), Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.BlockingStatuses(), Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocking bookings")

		return nil, engine.Unavailable("load blocking bookings", err) // nolint:wrapcheck
	}

	booked, err = model.BookedFrom(bookings)
	if err != nil {
		log.Error().Err(err).Str("company", companyID).Msg("failed to read blocking bookings")

		return nil, err
	}

	return booked, nil
}

func (s *serviceImpl) openIntervals(ctx context.Context, companyID string, date time.Time) ([]engine.Interval, error) {
	rules, err := s.schedule.Rules(ctx, companyID)
	if err != nil {
		return nil, err
	}

	exceptions, err := s.schedule.Exceptions(ctx, companyID, date, date)
	if err != nil {
		return nil, err
	}

	return engine.OpenIntervalsFor(date, rules, exceptions), nil
}

// intakeError maps a failed intake to its response. Anything outside the engine taxonomy came from
// the store or the transaction, so legality is unknown and the caller should retry.
func (s *serviceImpl) intakeError(err error) error {
	var (
		validation  *engine.ValidationError
		conflict    *engine.AvailabilityConflict
		unavailable *engine.StoreUnavailable
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &conflict):
		log.Info().Err(err).Msg("booking rejected")

		return engine.AsFailure(err) // nolint:wrapcheck
	case errors.As(err, &unavailable):
		log.Error().Err(err).Msg("booking store unavailable")

		return engine.AsFailure(err) // nolint:wrapcheck
	default:
		log.Error().Err(err).Msg("failed to create booking")

		return engine.AsFailure(engine.Unavailable("create booking", err)) // nolint:wrapcheck
	}
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) list(ctx context.Context, cachePrefix string, scoped gDto.Filter, req dto.ListRequest) (res dto.GetBookingsResponse, err error) {
	extra, err := req.Filters()
	if err != nil {
		return res, engine.AsFailure(err) // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  append([]any{scoped}, extra...),
	}

	params := req.QueryParams
	params.RestrictSort(model.FieldBookingDate, model.FieldStartTime, model.FieldStatus, constant.FieldCreatedAt)

	cacheKey := shared.BuildCacheKeyWithQuery(cachePrefix, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, booking model.Booking) {
	prefixes := []string{
		shared.BuildCacheKey(constant.CacheAvailability, booking.CompanyID),
		shared.BuildCacheKey(cacheBookingCompany, booking.CompanyID),
	}

	if booking.ClientUserID != nil {
		prefixes = append(prefixes, shared.BuildCacheKey(cacheBookingClient, *booking.ClientUserID))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, prefixes...)
	}()
}

// publish is best effort: the booking is already committed.
func (s *serviceImpl) publish(ctx context.Context, event dto.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.events.SendMessages(c, s.cfg.Booking.EventsTopic, event.ToMessage()); err != nil {
			log.Error().Err(err).Str("event", event.Type).Str("booking", event.BookingID).Msg("failed to publish booking event")
		}
	}()
}
