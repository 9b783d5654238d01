package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/availability/engine"
	"agenda/internal/domains/booking/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/logger"
	gRepo "agenda/shared/repository"
	"agenda/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	// one lock per company and date; hashtext keeps the key pair inside the two-int4 lock space
	advisoryLockQuery = "SELECT pg_advisory_xact_lock(hashtext($1), hashtext($2))"
	transitionQuery   = "UPDATE bookings SET status = $1, modified_at = $2, modified_by = $3 WHERE id = $4 AND status = $5"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// WithDayLock runs fn in a transaction holding the company's booking lock for date. Intakes for
	// the same company and date are serialized; other dates proceed in parallel.
	WithDayLock(ctx context.Context, companyID string, date time.Time, fn func(tx DayTx) error) error
	// Transition moves a booking from one status to another and reports false when the booking
	// was no longer in the from status.
	Transition(ctx context.Context, id string, from, to engine.Status, actor string) (bool, error)
}

// DayTx is the view of one company's bookings on one date inside WithDayLock.
type DayTx interface {
	Blocking(ctx context.Context) ([]model.Booking, error)
	// Insert maps exclusion and unique violations to an AvailabilityConflict.
	Insert(ctx context.Context, booking model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) WithDayLock(ctx context.Context, companyID string, date time.Time, fn func(tx DayTx) error) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.WithDayLock")
	defer scope.End()
	defer scope.TraceIfError(err)

	day := date.Format(constant.DayFormat)

	return r.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		if _, err := sqltx.ExecContext(ctx, advisoryLockQuery, companyID, day); err != nil {
			logger.ErrorWithStack(err)

			return engine.Unavailable("acquire booking lock", err)
		}

		return fn(&dayTx{repo: r, tx: sqltx, companyID: companyID, day: day})
	})
}

func (r *repositoryImpl) Transition(ctx context.Context, id string, from, to engine.Status, actor string) (ok bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, transitionQuery)

	result, err := r.db.Write.ExecContext(ctx, transitionQuery, string(to), timezone.Now(), actor, id, string(from))
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to transition booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read transitioned rows: %w", err)
	}

	return affected == 1, nil
}

type dayTx struct {
	repo      *repositoryImpl
	tx        *sqlx.Tx
	companyID string
	day       string
}

func (d *dayTx) Blocking(ctx context.Context) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCompanyID, Value: d.companyID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldBookingDate, Value: d.day, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.BlockingStatuses(), Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	bookings, err := d.repo.GetAllTx(ctx, d.tx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, engine.Unavailable("load blocking bookings", err)
	}

	return bookings, nil
}

func (d *dayTx) Insert(ctx context.Context, booking model.Booking) error {
	err := d.repo.InsertTx(ctx, d.tx, booking)
	if err == nil {
		return nil
	}

	if gRepo.IsExclusionViolation(err) || gRepo.IsUniqueViolation(err) {
		return &engine.AvailabilityConflict{Reason: engine.ReasonTimeSlotUnavailable}
	}

	return fmt.Errorf("failed to insert booking: %w", err)
}
