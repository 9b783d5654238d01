package service_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenda/config"
	kafkaMocks "agenda/infras/kafka/mocks"
	"agenda/infras/otel/mocks"
	"agenda/internal/domains/availability/engine"
	"agenda/internal/domains/booking/model"
	"agenda/internal/domains/booking/repository"
	"agenda/internal/domains/booking/service"
	catalogMocks "agenda/internal/domains/catalog/mocks"
	catalogModel "agenda/internal/domains/catalog/model"
	companyMocks "agenda/internal/domains/company/mocks"
	companyModel "agenda/internal/domains/company/model"
	scheduleMocks "agenda/internal/domains/schedule/mocks"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
)

// memoryStore serializes WithDayLock per company and date the way the advisory lock does, and
// only keeps a transaction's inserts when fn succeeds.
type memoryStore struct {
	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	bookings []model.Booking
}

func newMemoryStore() *memoryStore {
	return &memoryStore{locks: map[string]*sync.Mutex{}}
}

func (m *memoryStore) dayLock(key string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}

	return lock
}

func (m *memoryStore) WithDayLock(ctx context.Context, companyID string, date time.Time, fn func(tx repository.DayTx) error) error {
	lock := m.dayLock(companyID + "/" + date.Format(constant.DayFormat))
	lock.Lock()
	defer lock.Unlock()

	tx := &memoryTx{store: m, companyID: companyID, date: date}

	if err := fn(tx); err != nil {
		return err
	}

	m.mu.Lock()
	m.bookings = append(m.bookings, tx.staged...)
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) Get(context.Context, gDto.FilterGroup, ...string) (model.Booking, error) {
	return model.Booking{}, nil
}

func (m *memoryStore) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]model.Booking(nil), m.bookings...), nil
}

func (m *memoryStore) Count(context.Context, gDto.FilterGroup) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.bookings), nil
}

func (m *memoryStore) Transition(context.Context, string, engine.Status, engine.Status, string) (bool, error) {
	return false, nil
}

type memoryTx struct {
	store     *memoryStore
	companyID string
	date      time.Time
	staged    []model.Booking
}

func (t *memoryTx) Blocking(context.Context) ([]model.Booking, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	var res []model.Booking

	for _, b := range t.store.bookings {
		if b.CompanyID == t.companyID && engine.SameDay(b.BookingDate, t.date) && b.Status.Blocks() {
			res = append(res, b)
		}
	}

	return res, nil
}

func (t *memoryTx) Insert(_ context.Context, booking model.Booking) error {
	t.staged = append(t.staged, booking)

	return nil
}

func TestBookingService_ConcurrentOverlappingIntake(t *testing.T) {
	ctrl := gomock.NewController(t)
	date := inWeek()

	store := newMemoryStore()
	catalog := catalogMocks.NewMockCatalog(ctrl)
	companies := companyMocks.NewMockDirectory(ctrl)
	schedule := scheduleMocks.NewMockSchedule(ctrl)
	events := kafkaMocks.NewMockClient(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	catalog.EXPECT().GetBookable(gomock.Any(), companyID, serviceID).
		Return(catalogModel.Service{ID: serviceID, CompanyID: companyID, DurationMinutes: 60, IsActive: true}, nil).AnyTimes()
	companies.EXPECT().GetActive(gomock.Any(), companyID).Return(companyModel.Company{ID: companyID, IsActive: true}, nil).AnyTimes()
	schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(date), nil).AnyTimes()
	schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	svc := service.New(store, catalog, companies, schedule, events, cfg, cache, mocks.NewOtel())

	for round := range 20 {
		store.bookings = nil

		starts := []string{"10:00", "10:30"}
		errs := make([]error, len(starts))

		var (
			wg    sync.WaitGroup
			ready = make(chan struct{})
		)

		for i, start := range starts {
			wg.Add(1)

			go func() {
				defer wg.Done()
				<-ready

				_, errs[i] = svc.Create(context.Background(), client, request(date, start))
			}()
		}

		close(ready)
		wg.Wait()

		succeeded := 0

		for _, err := range errs {
			if err == nil {
				succeeded++

				continue
			}

			assert.Equal(t, http.StatusConflict, failure.GetCode(err), "round %d", round)
			assert.Equal(t, string(engine.ReasonTimeSlotUnavailable), failure.GetReason(err), "round %d", round)
		}

		require.Equal(t, 1, succeeded, "round %d: exactly one overlapping intake must win", round)
		require.Len(t, store.bookings, 1)
	}

	time.Sleep(10 * time.Millisecond)
}

func TestBookingService_ConcurrentIntakeOnOtherDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := inWeek()
	second := first.AddDate(0, 0, 7)

	store := newMemoryStore()
	catalog := catalogMocks.NewMockCatalog(ctrl)
	companies := companyMocks.NewMockDirectory(ctrl)
	schedule := scheduleMocks.NewMockSchedule(ctrl)
	events := kafkaMocks.NewMockClient(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	catalog.EXPECT().GetBookable(gomock.Any(), companyID, serviceID).
		Return(catalogModel.Service{ID: serviceID, CompanyID: companyID, DurationMinutes: 60, IsActive: true}, nil).AnyTimes()
	companies.EXPECT().GetActive(gomock.Any(), companyID).Return(companyModel.Company{ID: companyID, IsActive: true}, nil).AnyTimes()
	schedule.EXPECT().Rules(gomock.Any(), companyID).Return(nineToFive(first), nil).AnyTimes()
	schedule.EXPECT().Exceptions(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(store, catalog, companies, schedule, events, &config.Config{}, cache, mocks.NewOtel())

	var wg sync.WaitGroup

	errs := make([]error, 2)

	for i, date := range []time.Time{first, second} {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = svc.Create(context.Background(), client, request(date, "10:00"))
		}()
	}

	wg.Wait()
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Len(t, store.bookings, 2)
}
