package service

import (
	"context"
	"fmt"
	"taskdesk/config"
	"taskdesk/infras/otel"
	"taskdesk/internal/domains/category/model"
	"taskdesk/internal/domains/category/model/dto"
	"taskdesk/internal/domains/category/repository"
	"taskdesk/shared"
	"taskdesk/shared/constant"
	gDto "taskdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

type Category interface {
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CreateCategoryResponse, error)
}

type serviceImpl struct {
	repo repository.Category
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Category, cfg *config.Config, otel otel.Otel) Category {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByField(model.FieldUserID, user, model.TableName)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	return dto.CategoriesFromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCategoryRequest) (res dto.CreateCategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	category := req.ToModel(user)

	if err = s.repo.Insert(ctx, category); err != nil {
		log.Error().Err(err).Msg("failed to create category")

		return res, fmt.Errorf("failed to create category: %w", err)
	}

	return dto.CreateCategoryResponse{ID: category.ID}, nil
}
