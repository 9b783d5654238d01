package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/company/model"
	gDto "agenda/shared/dto"
	gRepo "agenda/shared/repository"
	"context"
)

type Company interface {
	Insert(ctx context.Context, model model.Company) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Company, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Company, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Company]
}

func New(db *postgres.Connection, otel otel.Otel) Company {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Company](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
