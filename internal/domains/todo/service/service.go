package service

import (
	"context"
	"fmt"
	"taskdesk/config"
	"taskdesk/infras/otel"
	categoryModel "taskdesk/internal/domains/category/model"
	categoryRepo "taskdesk/internal/domains/category/repository"
	"taskdesk/internal/domains/todo/model"
	"taskdesk/internal/domains/todo/model/dto"
	"taskdesk/internal/domains/todo/repository"
	"taskdesk/shared"
	"taskdesk/shared/constant"
	gDto "taskdesk/shared/dto"
	"taskdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	List(ctx context.Context) ([]dto.TodoResponse, error)
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.CreateTodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Todo
	categoryRepo categoryRepo.Category
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Todo, categoryRepo categoryRepo.Category, cfg *config.Config, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:         repo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByField(model.FieldUserID, user, model.TableName)

	models, err := s.repo.GetAll(ctx, gDto.SortByNewest(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	return dto.TodosFromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.CreateTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.CategoryID != "" {
		if err = s.checkCategoryOwner(ctx, req.CategoryID, user); err != nil {
			return res, err
		}
	}

	todo, err := req.ToModel(user)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	return dto.CreateTodoResponse{ID: todo.ID}, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getOwned(ctx, id, user); err != nil {
		return err
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		if err = s.checkCategoryOwner(ctx, *req.CategoryID, user); err != nil {
			return err
		}
	}

	updatedFields, err := req.ToUpdateMap(user)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getOwned(ctx, id, user); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

// getOwned loads a todo and enforces the ownership invariant. Existence is
// checked before ownership so a missing row is 404, not 403.
func (s *serviceImpl) getOwned(ctx context.Context, id, user string) (model.Todo, error) {
	todo, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return todo, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return todo, failure.NotFound("todo not found") //nolint:wrapcheck
	}

	if todo.UserID != user {
		return todo, failure.Forbidden("Unauthorized") //nolint:wrapcheck
	}

	return todo, nil
}

func (s *serviceImpl) checkCategoryOwner(ctx context.Context, categoryID, user string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    categoryModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    categoryID,
				Table:    categoryModel.TableName,
			},
			gDto.Filter{
				Field:    categoryModel.FieldUserID,
				ArgName:  "category_user_id",
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    categoryModel.TableName,
			},
		},
	}

	exist, err := s.categoryRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check category ownership")

		return fmt.Errorf("failed to check category ownership: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("category not found") //nolint:wrapcheck
	}

	return nil
}
