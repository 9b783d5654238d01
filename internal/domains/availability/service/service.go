package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/availability/engine"
	"agenda/internal/domains/availability/model/dto"
	catalogService "agenda/internal/domains/catalog/service"
	companyService "agenda/internal/domains/company/service"
	scheduleService "agenda/internal/domains/schedule/service"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/teambition/rrule-go"
)

const (
	cacheSlots = "slots"
	cacheOpen  = "open"

	defaultSlotStep        = 15
	defaultMaxCalendarDays = 62
)

// BookingSource lists the bookings that hold time on a date.
type BookingSource interface {
	Blocking(ctx context.Context, companyID string, date time.Time) ([]engine.Booked, error)
}

type Availability interface {
	// OpenIntervals is the company's open time on date. Store failures are StoreUnavailable.
	OpenIntervals(ctx context.Context, companyID string, date time.Time) ([]engine.Interval, error)
	// Day returns the open time of date and, when serviceID is set, the slots that fit the service.
	Day(ctx context.Context, companyID string, date time.Time, serviceID string) (dto.DayResponse, error)
	// Calendar returns the open time of every date in [from, to].
	Calendar(ctx context.Context, companyID string, from, to time.Time) (dto.CalendarResponse, error)
}

type serviceImpl struct {
	schedule  scheduleService.Schedule
	catalog   catalogService.Catalog
	companies companyService.Directory
	bookings  BookingSource
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	schedule scheduleService.Schedule,
	catalog catalogService.Catalog,
	companies companyService.Directory,
	bookings BookingSource,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		schedule:  schedule,
		catalog:   catalog,
		companies: companies,
		bookings:  bookings,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) OpenIntervals(ctx context.Context, companyID string, date time.Time) (open []engine.Interval, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.OpenIntervals")
	defer scope.End()
	defer scope.TraceIfError(err)

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

func (s *serviceImpl) Day(ctx context.Context, companyID string, date time.Time, serviceID string) (res dto.DayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Day")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.companies.GetActive(ctx, companyID); err != nil {
		return res, err
	}

	variant := cacheOpen
	if serviceID != constant.Empty {
		variant = serviceID
	}

	cacheKey := shared.BuildCacheKey(constant.CacheAvailability, companyID, cacheSlots, date.Format(constant.DayFormat), variant)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return s.dropElapsed(res, date), nil
	}

	res, err = s.day(ctx, companyID, date, serviceID)
	if err != nil {
		return res, engine.AsFailure(err) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return s.dropElapsed(res, date), nil
}

func (s *serviceImpl) Calendar(ctx context.Context, companyID string, from, to time.Time) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to = timezone.StartOfDay(from), timezone.StartOfDay(to)

	if to.Before(from) {
		return res, failure.BadRequestFromString("from must not be after to") // nolint:wrapcheck
	}

	maxDays := s.cfg.Booking.MaxCalendarDays
	if maxDays <= 0 {
		maxDays = defaultMaxCalendarDays
	}

	if to.After(from.AddDate(0, 0, maxDays-1)) {
		return res, failure.BadRequestFromString(fmt.Sprintf("calendar range is limited to %d days", maxDays)) // nolint:wrapcheck
	}

	if _, err = s.companies.GetActive(ctx, companyID); err != nil {
		return res, err
	}

	rule, err := rrule.NewRRule(rrule.ROption{Freq: rrule.DAILY, Dtstart: from, Until: to})
	if err != nil {
		log.Error().Err(err).Msg("failed to build calendar recurrence")

		return res, fmt.Errorf("failed to build calendar recurrence: %w", err)
	}

	rules, err := s.schedule.Rules(ctx, companyID)
	if err != nil {
		return res, engine.AsFailure(err) // nolint:wrapcheck
	}

	exceptions, err := s.schedule.Exceptions(ctx, companyID, from, to)
	if err != nil {
		return res, engine.AsFailure(err) // nolint:wrapcheck
	}

	res.CompanyID = companyID
	res.From = from.Format(constant.DayFormat)
	res.To = to.Format(constant.DayFormat)

	for _, date := range rule.Between(from, to, true) {
		res.Days = append(res.Days, dto.NewCalendarDay(date, engine.OpenIntervalsFor(date, rules, exceptions)))
	}

	return res, nil
}

func (s *serviceImpl) day(ctx context.Context, companyID string, date time.Time, serviceID string) (res dto.DayResponse, err error) {
	open, err := s.OpenIntervals(ctx, companyID, date)
	if err != nil {
		return res, err
	}

	res.CompanyID = companyID
	res.Date = date.Format(constant.DayFormat)
	res.Open = dto.FromIntervals(open)

	if serviceID == constant.Empty {
		return res, nil
	}

	service, err := s.catalog.GetBookable(ctx, companyID, serviceID)
	if err != nil {
		return res, err
	}

	booked, err := s.bookings.Blocking(ctx, companyID, date)
	if err != nil {
		return res, err
	}

	step := s.cfg.Booking.SlotStepMinutes
	if step <= 0 {
		step = defaultSlotStep
	}

	res.ServiceID = serviceID
	res.DurationMinutes = service.DurationMinutes
	res.Slots = dto.FromIntervals(engine.Slots(open, booked, service.DurationMinutes, step))

	return res, nil
}

// dropElapsed removes slots that can no longer be booked: all of them on past dates and those
// already started today.
func (s *serviceImpl) dropElapsed(res dto.DayResponse, date time.Time) dto.DayResponse {
	today := timezone.Today()

	switch {
	case engine.SameDay(date, today):
		now := timezone.Now()
		current := engine.ClockTime(now.Hour()*engine.MinutesPerHour + now.Minute())

		slots := make([]dto.IntervalResponse, 0, len(res.Slots))

		for _, slot := range res.Slots {
			start, err := engine.ParseClock(slot.Start)
			if err == nil && start >= current {
				slots = append(slots, slot)
			}
		}

		res.Slots = slots
	case date.Before(today):
		res.Slots = []dto.IntervalResponse{}
	}

	return res
}
