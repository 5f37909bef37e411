package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/category_mock.go -package=mocks

import (
	"context"
	"taskdesk/infras/otel"
	"taskdesk/infras/postgres"
	"taskdesk/internal/domains/category/model"
	gDto "taskdesk/shared/dto"
	gRepo "taskdesk/shared/repository"
)

type Category interface {
	Insert(ctx context.Context, model model.Category) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Category, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Category]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Category {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Category](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
