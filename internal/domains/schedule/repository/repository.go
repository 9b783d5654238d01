package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/schedule/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	gRepo "agenda/shared/repository"
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Weekly interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.WeeklySchedule, error)
	// UpsertAll writes every rule in one transaction, one row per (company, weekday).
	UpsertAll(ctx context.Context, rules []model.WeeklySchedule) error
}

type Exception interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ScheduleException, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ScheduleException, error)
	// Put writes the exception, replacing any existing one on the same date.
	Put(ctx context.Context, exception model.ScheduleException) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type weeklyImpl struct {
	gRepo.Repository[model.WeeklySchedule]
}

func NewWeekly(db *postgres.Connection, otel otel.Otel) Weekly {
	return &weeklyImpl{
		Repository: gRepo.NewRepository[model.WeeklySchedule](model.WeeklyEntityName, model.WeeklyTableName, model.FieldID, db, otel),
	}
}

func (r *weeklyImpl) UpsertAll(ctx context.Context, rules []model.WeeklySchedule) error {
	conflict := []string{model.FieldCompanyID, model.FieldDayOfWeek}
	update := []string{model.FieldStartTime, model.FieldEndTime, model.FieldIsActive, constant.FieldModifiedAt, constant.FieldModifiedBy}

	err := r.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		for _, rule := range rules {
			if err := r.UpsertTx(ctx, sqltx, rule, conflict, update); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert weekly schedule: %w", err)
	}

	return nil
}

type exceptionImpl struct {
	gRepo.Repository[model.ScheduleException]
}

func NewException(db *postgres.Connection, otel otel.Otel) Exception {
	return &exceptionImpl{
		Repository: gRepo.NewRepository[model.ScheduleException](model.ExceptionEntityName, model.ExceptionTableName, model.FieldID, db, otel),
	}
}

func (r *exceptionImpl) Put(ctx context.Context, exception model.ScheduleException) error {
	return r.Upsert(ctx, exception,
		[]string{model.FieldCompanyID, model.FieldExceptionDate},
		[]string{model.FieldIsClosed, model.FieldStartTime, model.FieldEndTime, model.FieldReason, constant.FieldModifiedAt, constant.FieldModifiedBy},
	)
}
