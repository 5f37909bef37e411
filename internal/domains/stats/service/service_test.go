package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"taskdesk/config"
	"taskdesk/infras/otel/mocks"
	categoryMocks "taskdesk/internal/domains/category/mocks"
	categoryModel "taskdesk/internal/domains/category/model"
	"taskdesk/internal/domains/stats/service"
	todoMocks "taskdesk/internal/domains/todo/mocks"
	"taskdesk/shared/constant"
)

const testUserID = "test-user-id"

func newService(t *testing.T) (service.Stats, *todoMocks.MockTodo, *categoryMocks.MockCategory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockTodoRepo := todoMocks.NewMockTodo(ctrl)
	mockCategoryRepo := categoryMocks.NewMockCategory(ctrl)

	svc := service.New(mockTodoRepo, mockCategoryRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockTodoRepo, mockCategoryRepo
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)
}

func TestStatsService_Summary(t *testing.T) {
	svc, mockTodoRepo, mockCategoryRepo := newService(t)

	// Three todos, two of them completed, two filed under the one category.
	gomock.InOrder(
		mockTodoRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil),
		mockTodoRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil),
		mockCategoryRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]categoryModel.Category{
				{ID: "cat-1", Name: "Work", UserID: testUserID},
			}, nil),
		mockTodoRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil),
	)

	res, err := svc.Summary(userContext())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Completed)
	require.Len(t, res.Categories, 1)
	assert.Equal(t, "Work", res.Categories[0].Name)
	assert.Equal(t, 2, res.Categories[0].Count)
}

func TestStatsService_Summary_ZeroCountCategoriesIncluded(t *testing.T) {
	svc, mockTodoRepo, mockCategoryRepo := newService(t)

	gomock.InOrder(
		mockTodoRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil),
		mockTodoRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil),
		mockCategoryRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]categoryModel.Category{
				{ID: "cat-1", Name: "Empty", UserID: testUserID},
			}, nil),
		mockTodoRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil),
	)

	res, err := svc.Summary(userContext())

	require.NoError(t, err)
	require.Len(t, res.Categories, 1)
	assert.Equal(t, 0, res.Categories[0].Count)
}

func TestStatsService_Summary_NoCategories(t *testing.T) {
	svc, mockTodoRepo, mockCategoryRepo := newService(t)

	gomock.InOrder(
		mockTodoRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil),
		mockTodoRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil),
		mockCategoryRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]categoryModel.Category{}, nil),
	)

	res, err := svc.Summary(userContext())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.NotNil(t, res.Categories, "categories must encode as [] not null")
	assert.Empty(t, res.Categories)
}

func TestStatsService_Summary_CountError(t *testing.T) {
	svc, mockTodoRepo, _ := newService(t)

	mockTodoRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("database error"))

	_, err := svc.Summary(userContext())

	assert.Error(t, err)
}
