package dto_test

import (
	"testing"

	"taskdesk/internal/domains/todo/model"
	"taskdesk/internal/domains/todo/model/dto"
	"taskdesk/shared/constant"
	"taskdesk/shared/failure"
	gModel "taskdesk/shared/model"
	"taskdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoRequest_ToModel(t *testing.T) {
	req := dto.CreateTodoRequest{
		Title:       "Buy groceries",
		Description: "Milk and eggs",
	}

	userID := "test-user-id"
	todo, err := req.ToModel(userID)
	require.NoError(t, err)

	assert.NotEmpty(t, todo.ID, "expected ID to be generated")
	assert.Equal(t, req.Title, todo.Title)
	assert.Equal(t, req.Description, todo.Description)
	assert.False(t, todo.Completed)
	assert.Equal(t, constant.PriorityMedium, todo.Priority, "expected priority to default to medium")
	assert.Nil(t, todo.DueDate)
	assert.Nil(t, todo.CategoryID)
	assert.Equal(t, userID, todo.UserID)
	assert.Equal(t, userID, todo.CreatedBy)
	assert.False(t, todo.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateTodoRequest_ToModel_DueDate(t *testing.T) {
	tests := []struct {
		name    string
		dueDate string
		wantErr bool
	}{
		{name: "iso timestamp", dueDate: "2025-06-01T10:00:00"},
		{name: "rfc3339 timestamp", dueDate: "2025-06-01T10:00:00Z"},
		{name: "date only", dueDate: "2025-06-01"},
		{name: "garbage", dueDate: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateTodoRequest{Title: "Test", DueDate: tt.dueDate}

			todo, err := req.ToModel("user")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			require.NotNil(t, todo.DueDate)
		})
	}
}

func TestTodoResponse_DueDateRoundTrip(t *testing.T) {
	req := dto.CreateTodoRequest{Title: "Test", DueDate: "2025-06-01T10:00:00"}

	todo, err := req.ToModel("user")
	require.NoError(t, err)

	var response dto.TodoResponse
	response.FromModel(todo)

	require.NotNil(t, response.DueDate)
	assert.Equal(t, "2025-06-01T10:00:00", *response.DueDate)
}

func TestUpdateTodoRequest_IsEmpty(t *testing.T) {
	assert.True(t, (&dto.UpdateTodoRequest{}).IsEmpty())

	completed := true
	assert.False(t, (&dto.UpdateTodoRequest{Completed: &completed}).IsEmpty())
}

func TestUpdateTodoRequest_ToUpdateMap(t *testing.T) {
	emptyStr := ""
	title := "New title"
	completed := true

	tests := []struct {
		name       string
		req        dto.UpdateTodoRequest
		wantFields map[string]bool
		skipFields []string
		wantErr    bool
	}{
		{
			name:       "only completed",
			req:        dto.UpdateTodoRequest{Completed: &completed},
			wantFields: map[string]bool{model.FieldCompleted: true},
			skipFields: []string{model.FieldTitle, model.FieldDescription, model.FieldPriority, model.FieldDueDate, model.FieldCategoryID},
		},
		{
			name:       "empty title is ignored",
			req:        dto.UpdateTodoRequest{Title: &emptyStr, Completed: &completed},
			wantFields: map[string]bool{model.FieldCompleted: true},
			skipFields: []string{model.FieldTitle},
		},
		{
			name:       "title overwrite",
			req:        dto.UpdateTodoRequest{Title: &title},
			wantFields: map[string]bool{model.FieldTitle: true},
		},
		{
			name:       "empty due_date clears the value",
			req:        dto.UpdateTodoRequest{DueDate: &emptyStr},
			wantFields: map[string]bool{model.FieldDueDate: true},
		},
		{
			name:       "empty category_id clears the value",
			req:        dto.UpdateTodoRequest{CategoryID: &emptyStr},
			wantFields: map[string]bool{model.FieldCategoryID: true},
		},
		{
			name:    "invalid due_date",
			req:     dto.UpdateTodoRequest{DueDate: strPtr("not-a-date")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := tt.req.ToUpdateMap("test-user")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			for field := range tt.wantFields {
				assert.Contains(t, fields, field)
			}

			for _, field := range tt.skipFields {
				assert.NotContains(t, fields, field)
			}

			assert.Contains(t, fields, "modified_at")
			assert.Equal(t, "test-user", fields["modified_by"])
		})
	}
}

func TestUpdateTodoRequest_ToUpdateMap_ClearedValuesAreNil(t *testing.T) {
	emptyStr := ""
	req := dto.UpdateTodoRequest{DueDate: &emptyStr, CategoryID: &emptyStr}

	fields, err := req.ToUpdateMap("test-user")
	require.NoError(t, err)

	assert.Nil(t, fields[model.FieldDueDate])
	assert.Nil(t, fields[model.FieldCategoryID])
}

func TestTodoResponse_CategoryProjection(t *testing.T) {
	categoryID := "cat-id"
	name := "Work"
	color := "#ff0000"

	todo := model.Todo{
		ID:            "todo-id",
		Title:         "Test",
		Priority:      constant.PriorityHigh,
		CategoryID:    &categoryID,
		CategoryName:  &name,
		CategoryColor: &color,
		UserID:        "user",
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}

	var response dto.TodoResponse
	response.FromModel(todo)

	require.NotNil(t, response.Category)
	assert.Equal(t, categoryID, response.Category.ID)
	assert.Equal(t, name, response.Category.Name)
	assert.Equal(t, color, response.Category.Color)
}

func TestTodoResponse_NoCategory(t *testing.T) {
	todo := model.Todo{
		ID:     "todo-id",
		Title:  "Test",
		UserID: "user",
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}

	var response dto.TodoResponse
	response.FromModel(todo)

	assert.Nil(t, response.Category)
	assert.Nil(t, response.DueDate)
}

func strPtr(s string) *string {
	return &s
}
