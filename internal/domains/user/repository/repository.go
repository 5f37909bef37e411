package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/user_mock.go -package=mocks

import (
	"context"
	"taskdesk/infras/otel"
	"taskdesk/infras/postgres"
	"taskdesk/internal/domains/user/model"
	gDto "taskdesk/shared/dto"
	gRepo "taskdesk/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
