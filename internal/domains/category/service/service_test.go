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
	"taskdesk/internal/domains/category/model"
	"taskdesk/internal/domains/category/model/dto"
	"taskdesk/internal/domains/category/service"
	"taskdesk/shared/constant"
)

const testUserID = "test-user-id"

func newService(t *testing.T) (service.Category, *categoryMocks.MockCategory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := categoryMocks.NewMockCategory(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockRepo
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)
}

func TestCategoryService_List(t *testing.T) {
	svc, mockRepo := newService(t)

	categories := []model.Category{
		{ID: "cat-1", Name: "Work", Color: "#ff0000", UserID: testUserID},
		{ID: "cat-2", Name: "Home", Color: constant.DefaultCategoryColor, UserID: testUserID},
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(categories, nil)

	res, err := svc.List(userContext())

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Work", res[0].Name)
	assert.Equal(t, constant.DefaultCategoryColor, res[1].Color)
}

func TestCategoryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateCategoryRequest
		setupMock func(repo *categoryMocks.MockCategory)
		wantErr   bool
	}{
		{
			name: "successful creation with default color",
			req:  dto.CreateCategoryRequest{Name: "Work"},
			setupMock: func(repo *categoryMocks.MockCategory) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, category model.Category) error {
						assert.Equal(t, constant.DefaultCategoryColor, category.Color)
						assert.Equal(t, testUserID, category.UserID)

						return nil
					})
			},
		},
		{
			name: "explicit color is kept",
			req:  dto.CreateCategoryRequest{Name: "Work", Color: "#ff0000"},
			setupMock: func(repo *categoryMocks.MockCategory) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, category model.Category) error {
						assert.Equal(t, "#ff0000", category.Color)

						return nil
					})
			},
		},
		{
			name: "repository error",
			req:  dto.CreateCategoryRequest{Name: "Work"},
			setupMock: func(repo *categoryMocks.MockCategory) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Create(userContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
		})
	}
}
