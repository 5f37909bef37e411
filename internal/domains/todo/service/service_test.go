package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"taskdesk/config"
	"taskdesk/infras/otel/mocks"
	categoryMocks "taskdesk/internal/domains/category/mocks"
	todoMocks "taskdesk/internal/domains/todo/mocks"
	"taskdesk/internal/domains/todo/model"
	"taskdesk/internal/domains/todo/model/dto"
	"taskdesk/internal/domains/todo/service"
	"taskdesk/shared/constant"
	"taskdesk/shared/failure"
	gDto "taskdesk/shared/dto"
	gModel "taskdesk/shared/model"
	"taskdesk/shared/timezone"
)

const testUserID = "test-user-id"

func newService(t *testing.T) (service.Todo, *todoMocks.MockTodo, *categoryMocks.MockCategory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockCategoryRepo := categoryMocks.NewMockCategory(ctrl)

	svc := service.New(mockRepo, mockCategoryRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockRepo, mockCategoryRepo
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)
}

func ownedTodo() model.Todo {
	return model.Todo{
		ID:       "todo-id",
		Title:    "Test Todo",
		Priority: constant.PriorityMedium,
		UserID:   testUserID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  testUserID,
			ModifiedBy: testUserID,
		},
	}
}

func TestTodoService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		setupMock func(repo *todoMocks.MockTodo, categoryRepo *categoryMocks.MockCategory)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation with defaults",
			req: dto.CreateTodoRequest{
				Title: "Test Todo",
			},
			setupMock: func(repo *todoMocks.MockTodo, _ *categoryMocks.MockCategory) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, todo model.Todo) error {
						assert.Equal(t, constant.PriorityMedium, todo.Priority)
						assert.False(t, todo.Completed)
						assert.Equal(t, testUserID, todo.UserID)

						return nil
					})
			},
		},
		{
			name: "owned category is accepted",
			req: dto.CreateTodoRequest{
				Title:      "Test Todo",
				CategoryID: "11111111-1111-1111-1111-111111111111",
			},
			setupMock: func(repo *todoMocks.MockTodo, categoryRepo *categoryMocks.MockCategory) {
				categoryRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown or foreign category is rejected",
			req: dto.CreateTodoRequest{
				Title:      "Test Todo",
				CategoryID: "11111111-1111-1111-1111-111111111111",
			},
			setupMock: func(_ *todoMocks.MockTodo, categoryRepo *categoryMocks.MockCategory) {
				categoryRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid due date",
			req: dto.CreateTodoRequest{
				Title:   "Test Todo",
				DueDate: "not-a-date",
			},
			setupMock: func(_ *todoMocks.MockTodo, _ *categoryMocks.MockCategory) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateTodoRequest{
				Title: "Test Todo",
			},
			setupMock: func(repo *todoMocks.MockTodo, _ *categoryMocks.MockCategory) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCategoryRepo := newService(t)
			tt.setupMock(mockRepo, mockCategoryRepo)

			res, err := svc.Create(userContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestTodoService_List(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	todos := []model.Todo{ownedTodo()}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Todo, error) {
			assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
			assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

			return todos, nil
		})

	res, err := svc.List(userContext())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "todo-id", res[0].ID)
}

func TestTodoService_Update(t *testing.T) {
	completed := true

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		setupMock func(repo *todoMocks.MockTodo, categoryRepo *categoryMocks.MockCategory)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful partial update",
			req:  dto.UpdateTodoRequest{Completed: &completed},
			setupMock: func(repo *todoMocks.MockTodo, _ *categoryMocks.MockCategory) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedTodo(), nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, true, fields[model.FieldCompleted])
						assert.NotContains(t, fields, model.FieldTitle)

						return nil
					})
			},
		},
		{
			name:      "empty update is rejected",
			req:       dto.UpdateTodoRequest{},
			setupMock: func(_ *todoMocks.MockTodo, _ *categoryMocks.MockCategory) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing todo is 404",
			req:  dto.UpdateTodoRequest{Completed: &completed},
			setupMock: func(repo *todoMocks.MockTodo, _ *categoryMocks.MockCategory) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "foreign todo is 403",
			req:  dto.UpdateTodoRequest{Completed: &completed},
			setupMock: func(repo *todoMocks.MockTodo, _ *categoryMocks.MockCategory) {
				foreign := ownedTodo()
				foreign.UserID = "someone-else"

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(foreign, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "foreign category is rejected",
			req: dto.UpdateTodoRequest{
				CategoryID: strPtr("11111111-1111-1111-1111-111111111111"),
			},
			setupMock: func(repo *todoMocks.MockTodo, categoryRepo *categoryMocks.MockCategory) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedTodo(), nil)
				categoryRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCategoryRepo := newService(t)
			tt.setupMock(mockRepo, mockCategoryRepo)

			err := svc.Update(userContext(), tt.req, "todo-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *todoMocks.MockTodo)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownedTodo(), nil)
				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "missing todo is 404 even for another user's id",
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "foreign todo is 403",
			setupMock: func(repo *todoMocks.MockTodo) {
				foreign := ownedTodo()
				foreign.UserID = "someone-else"

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(foreign, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			err := svc.Delete(userContext(), "todo-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
