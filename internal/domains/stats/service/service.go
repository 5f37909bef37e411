package service

import (
	"context"
	"fmt"
	"taskdesk/config"
	"taskdesk/infras/otel"
	categoryModel "taskdesk/internal/domains/category/model"
	categoryRepo "taskdesk/internal/domains/category/repository"
	"taskdesk/internal/domains/stats/model/dto"
	todoModel "taskdesk/internal/domains/todo/model"
	todoRepo "taskdesk/internal/domains/todo/repository"
	"taskdesk/shared"
	"taskdesk/shared/constant"
	gDto "taskdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

type Stats interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	todoRepo     todoRepo.Todo
	categoryRepo categoryRepo.Category
	cfg          *config.Config
	otel         otel.Otel
}

func New(todoRepo todoRepo.Todo, categoryRepo categoryRepo.Category, cfg *config.Config, otel otel.Otel) Stats {
	return &serviceImpl{
		todoRepo:     todoRepo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

// Summary recomputes the counts on every call. Per-category counts run one
// query per category; fine at personal-tool scale.
func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	userFilter := shared.FilterByField(todoModel.FieldUserID, user, todoModel.TableName)

	total, err := s.todoRepo.Count(ctx, userFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos")

		return res, fmt.Errorf("failed to count todos: %w", err)
	}

	completedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    todoModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    todoModel.TableName,
			},
			gDto.Filter{
				Field:    todoModel.FieldCompleted,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    todoModel.TableName,
			},
		},
	}

	completed, err := s.todoRepo.Count(ctx, completedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count completed todos")

		return res, fmt.Errorf("failed to count completed todos: %w", err)
	}

	categories, err := s.categoryRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByField(categoryModel.FieldUserID, user, categoryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	counts := make([]dto.CategoryCount, 0, len(categories))

	for _, category := range categories {
		count, err := s.todoRepo.Count(ctx, shared.FilterByField(todoModel.FieldCategoryID, category.ID, todoModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("category_id", category.ID).Msg("failed to count todos in category")

			return res, fmt.Errorf("failed to count todos in category: %w", err)
		}

		counts = append(counts, dto.CategoryCount{Name: category.Name, Count: count})
	}

	return dto.SummaryResponse{
		Total:      total,
		Completed:  completed,
		Categories: counts,
	}, nil
}
