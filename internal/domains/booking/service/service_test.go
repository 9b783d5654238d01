package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenda/config"
	kafkaMocks "agenda/infras/kafka/mocks"
	"agenda/infras/otel/mocks"
	"agenda/internal/domains/availability/engine"
	bookingMocks "agenda/internal/domains/booking/mocks"
	"agenda/internal/domains/booking/model"
	"agenda/internal/domains/booking/model/dto"
	"agenda/internal/domains/booking/repository"
	"agenda/internal/domains/booking/service"
	catalogMocks "agenda/internal/domains/catalog/mocks"
	catalogModel "agenda/internal/domains/catalog/model"
	companyMocks "agenda/internal/domains/company/mocks"
	companyModel "agenda/internal/domains/company/model"
	scheduleMocks "agenda/internal/domains/schedule/mocks"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/identity"
	"agenda/shared/timezone"
)

const (
	companyID = "7f1c2a8e-7d3b-4a8e-9d7e-0c5f1b2a3c4d"
	serviceID = "2b9d4e6f-1a3c-4e5f-8a7b-9c0d1e2f3a4b"
)

var (
	owner  = identity.Identity{UserID: "owner-1", Role: constant.RoleOwner}
	client = identity.Identity{UserID: "client-1", Role: constant.RoleClient}
)

type fixture struct {
	repo      *bookingMocks.MockBooking
	tx        *bookingMocks.MockDayTx
	catalog   *catalogMocks.MockCatalog
	companies *companyMocks.MockDirectory
	schedule  *scheduleMocks.MockSchedule
	events    *kafkaMocks.MockClient
	cache     *cacheMocks.MockRedisCache
	cfg       *config.Config
	svc       service.Bookings
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		tx:        bookingMocks.NewMockDayTx(ctrl),
		catalog:   catalogMocks.NewMockCatalog(ctrl),
		companies: companyMocks.NewMockDirectory(ctrl),
		schedule:  scheduleMocks.NewMockSchedule(ctrl),
		events:    kafkaMocks.NewMockClient(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		cfg:       &config.Config{},
	}

	f.cfg.Cache.TTL = 3600
	f.cfg.Booking.EventsTopic = "booking-events"

	f.svc = service.New(f.repo, f.catalog, f.companies, f.schedule, f.events, f.cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

// inWeek is a date one week out, so it is never in the past.
func inWeek() time.Time {
	return timezone.Today().AddDate(0, 0, 7)
}

func nineToFive(date time.Time) []engine.WeeklyRule {
	return []engine.WeeklyRule{{
		DayOfWeek: date.Weekday(),
		Open:      engine.Interval{Start: engine.MustParseClock("09:00"), End: engine.MustParseClock("17:00")},
		Active:    true,
	}}
}

func request(date time.Time, start string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CompanyID:   companyID,
		ServiceID:   serviceID,
		ClientName:  "Ana",
		ClientEmail: "ana@example.com",
		BookingDate: date.Format(constant.DayFormat),
		StartTime:   start,
	}
}

func (f fixture) expectBookable(duration int) {
	f.catalog.EXPECT().GetBookable(gomock.Any(), companyID, serviceID).
		Return(catalogModel.Service{ID: serviceID, CompanyID: companyID, DurationMinutes: duration, IsActive: true}, nil)
	f.companies.EXPECT().GetActive(gomock.Any(), companyID).Return(companyModel.Company{ID: companyID, IsActive: true}, nil)
}

func (f fixture) expectLock() {
	f.repo.EXPECT().WithDayLock(gomock.Any(), companyID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ time.Time, fn func(repository.DayTx) error) error {
			return fn(f.tx)
		})
}

func booked(date time.Time, start, end string, status engine.Status) model.Booking {
	return model.Booking{ID: "b-" + start, CompanyID: companyID, BookingDate: date, StartTime: start, EndTime: end, Status: status}
}

func TestBookingService_Create(t *testing.T) {
	date := inWeek()

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func(f fixture)
		wantCode   int
		wantReason string
	}{
		{
			name: "legal request is stored as pending",
			req:  request(date, "10:00"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(date), nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return([]model.Booking{booked(date, "11:00", "12:00", engine.StatusConfirmed)}, nil)
				f.tx.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
					assert.Equal(t, engine.StatusPending, b.Status)
					assert.Equal(t, "10:00", b.StartTime)
					assert.Equal(t, "11:00", b.EndTime)
					assert.True(t, b.BookedBy(client.UserID))

					return nil
				})
			},
		},
		{
			name: "adjacent to a confirmed booking is legal",
			req:  request(date, "12:00"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(date), nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return([]model.Booking{booked(date, "11:00", "12:00", engine.StatusConfirmed)}, nil)
				f.tx.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "overlapping a pending booking",
			req:  request(date, "10:30"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(date), nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return([]model.Booking{booked(date, "11:00", "12:00", engine.StatusPending)}, nil)
			},
			wantCode:   http.StatusConflict,
			wantReason: string(engine.ReasonTimeSlotUnavailable),
		},
		{
			name: "running past closing time",
			req:  request(date, "16:30"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(date), nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return(nil, nil)
			},
			wantCode:   http.StatusConflict,
			wantReason: string(engine.ReasonOutsideBusinessHours),
		},
		{
			name: "closed by exception",
			req:  request(date, "10:00"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(date), nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return([]engine.Exception{{Date: date, Closed: true}}, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return(nil, nil)
			},
			wantCode:   http.StatusConflict,
			wantReason: string(engine.ReasonOutsideBusinessHours),
		},
		{
			name: "exclusion constraint backstop",
			req:  request(date, "10:00"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(date), nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&engine.AvailabilityConflict{Reason: engine.ReasonTimeSlotUnavailable})
			},
			wantCode:   http.StatusConflict,
			wantReason: string(engine.ReasonTimeSlotUnavailable),
		},
		{
			name: "schedule store down is retryable",
			req:  request(date, "10:00"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nil, engine.Unavailable("load weekly schedule", errors.New("timeout")))
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "transaction failure is retryable",
			req:  request(date, "10:00"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.repo.EXPECT().WithDayLock(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "past date",
			req:  request(timezone.Today().AddDate(0, 0, -1), "10:00"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(timezone.Today().AddDate(0, 0, -1)), nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return(nil, nil)
			},
			wantCode:   http.StatusBadRequest,
			wantReason: "validation",
		},
		{
			name: "wrapping past midnight",
			req:  request(date, "23:30"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(date), nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return(nil, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "last slot before a midnight close",
			req:  request(date, "23:00"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return([]engine.WeeklyRule{{
					DayOfWeek: date.Weekday(),
					Open:      engine.Interval{Start: engine.MustParseClock("18:00"), End: engine.MinutesPerDay},
					Active:    true,
				}}, nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
					assert.Equal(t, "23:00", b.StartTime)
					assert.Equal(t, "24:00", b.EndTime)

					return nil
				})
			},
		},
		{
			name: "unreadable blocking booking",
			req:  request(date, "10:00"),
			setupMock: func(f fixture) {
				f.expectBookable(60)
				f.expectLock()
				f.schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(date), nil)
				f.schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)
				f.tx.EXPECT().Blocking(gomock.Any()).Return([]model.Booking{booked(date, "10:00", "late", engine.StatusConfirmed)}, nil)
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:      "malformed start time",
			req:       request(date, "ten"),
			setupMock: func(f fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "inactive service",
			req:  request(date, "10:00"),
			setupMock: func(f fixture) {
				f.catalog.EXPECT().GetBookable(gomock.Any(), companyID, serviceID).Return(catalogModel.Service{}, failure.NotFound("service not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "inactive company",
			req:  request(date, "10:00"),
			setupMock: func(f fixture) {
				f.catalog.EXPECT().GetBookable(gomock.Any(), companyID, serviceID).Return(catalogModel.Service{ID: serviceID, DurationMinutes: 30}, nil)
				f.companies.EXPECT().GetActive(gomock.Any(), companyID).Return(companyModel.Company{}, failure.NotFound("company not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), client, tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantReason != "" {
					assert.Equal(t, tt.wantReason, failure.GetReason(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, engine.StatusPending, res.Status)
			assert.Equal(t, client.UserID, res.ClientUserID)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	future := inWeek()
	past := timezone.Today().AddDate(0, 0, -3)

	tests := []struct {
		name        string
		stored      model.Booking
		to          engine.Status
		requirePast bool
		setupMock   func(f fixture)
		wantCode    int
	}{
		{
			name:   "owner confirms a pending booking",
			stored: booked(future, "10:00", "11:00", engine.StatusPending),
			to:     engine.StatusConfirmed,
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, companyID).Return(companyModel.Company{ID: companyID}, nil)
				f.repo.EXPECT().Transition(gomock.Any(), "b-10:00", engine.StatusPending, engine.StatusConfirmed, owner.UserID).Return(true, nil)
			},
		},
		{
			name:   "terminal status cannot move",
			stored: booked(future, "10:00", "11:00", engine.StatusCancelled),
			to:     engine.StatusConfirmed,
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, companyID).Return(companyModel.Company{ID: companyID}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "future booking may complete by default",
			stored: booked(future, "10:00", "11:00", engine.StatusConfirmed),
			to:     engine.StatusCompleted,
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, companyID).Return(companyModel.Company{ID: companyID}, nil)
				f.repo.EXPECT().Transition(gomock.Any(), gomock.Any(), engine.StatusConfirmed, engine.StatusCompleted, gomock.Any()).Return(true, nil)
			},
		},
		{
			name:        "future booking cannot complete when past is required",
			stored:      booked(future, "10:00", "11:00", engine.StatusConfirmed),
			to:          engine.StatusCompleted,
			requirePast: true,
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, companyID).Return(companyModel.Company{ID: companyID}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:        "past booking completes when past is required",
			stored:      booked(past, "10:00", "11:00", engine.StatusConfirmed),
			to:          engine.StatusCompleted,
			requirePast: true,
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, companyID).Return(companyModel.Company{ID: companyID}, nil)
				f.repo.EXPECT().Transition(gomock.Any(), gomock.Any(), engine.StatusConfirmed, engine.StatusCompleted, gomock.Any()).Return(true, nil)
			},
		},
		{
			name:   "lost a concurrent transition",
			stored: booked(future, "10:00", "11:00", engine.StatusPending),
			to:     engine.StatusCancelled,
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, companyID).Return(companyModel.Company{ID: companyID}, nil)
				f.repo.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "not the owner",
			stored: booked(future, "10:00", "11:00", engine.StatusPending),
			to:     engine.StatusConfirmed,
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, companyID).Return(companyModel.Company{}, failure.ResourceRestrictedError)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.cfg.Booking.RequirePastForComplete = tt.requirePast

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.stored, nil)
			tt.setupMock(f)

			res, err := f.svc.UpdateStatus(context.Background(), owner, tt.stored.ID, dto.UpdateStatusRequest{Status: tt.to})
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, res.Status)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateStatus(context.Background(), owner, "b1", dto.UpdateStatusRequest{Status: "archived"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	clientID := client.UserID
	stored := booked(inWeek(), "10:00", "11:00", engine.StatusPending)
	stored.ClientUserID = &clientID

	t.Run("client reads own booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		res, err := f.svc.Get(context.Background(), client, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, res.ID)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		f := newFixture(t)
		stranger := identity.Identity{UserID: "client-2", Role: constant.RoleClient}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.companies.EXPECT().Authorize(gomock.Any(), stranger, companyID).Return(companyModel.Company{}, failure.ResourceRestrictedError)

		_, err := f.svc.Get(context.Background(), stranger, stored.ID)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), owner, "missing")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Lists(t *testing.T) {
	t.Run("owner lists company bookings", func(t *testing.T) {
		f := newFixture(t)

		f.companies.EXPECT().Authorize(gomock.Any(), owner, companyID).Return(companyModel.Company{ID: companyID}, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{booked(inWeek(), "10:00", "11:00", engine.StatusPending)}, nil)

		req := dto.ListRequest{Status: "pending"}
		req.Limit = 10

		res, err := f.svc.ListForCompany(context.Background(), owner, companyID, req)
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("bad status filter", func(t *testing.T) {
		f := newFixture(t)

		f.companies.EXPECT().Authorize(gomock.Any(), owner, companyID).Return(companyModel.Company{ID: companyID}, nil)

		_, err := f.svc.ListForCompany(context.Background(), owner, companyID, dto.ListRequest{Status: "archived"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("anonymous caller has no bookings", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ListMine(context.Background(), identity.Identity{}, dto.ListRequest{})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestBookingService_Blocking(t *testing.T) {
	f := newFixture(t)
	date := inWeek()

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{
		booked(date, "10:00", "11:00", engine.StatusPending),
	}, nil)

	res, err := f.svc.Blocking(context.Background(), companyID, date)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, engine.Interval{Start: 600, End: 660}, res[0].Interval)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err = f.svc.Blocking(context.Background(), companyID, date)

	var unavailable *engine.StoreUnavailable
	assert.ErrorAs(t, err, &unavailable)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{
		booked(date, "10:00", "11:00", engine.StatusPending),
		booked(date, "12:00", "", engine.StatusConfirmed),
	}, nil)

	_, err = f.svc.Blocking(context.Background(), companyID, date)
	assert.ErrorAs(t, err, &unavailable)
}
