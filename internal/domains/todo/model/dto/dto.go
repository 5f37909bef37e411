package dto

import (
	"taskdesk/internal/domains/todo/model"
	"taskdesk/shared/constant"
	"taskdesk/shared/failure"
	gModel "taskdesk/shared/model"
	"taskdesk/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// dueDateLayouts are accepted on input; responses always use
// constant.DateTimeFormat so a stored timestamp round-trips unchanged.
var dueDateLayouts = []string{
	constant.DateTimeFormat,
	time.RFC3339,
	"2006-01-02",
}

func ParseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if parsed, err := timezone.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, failure.BadRequestFromString("due_date must be an ISO-8601 timestamp") //nolint:wrapcheck
}

type CreateTodoRequest struct {
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"due_date"    validate:"omitempty"`
	CategoryID  string `json:"category_id" validate:"omitempty,uuid"`
}

func (c *CreateTodoRequest) ToModel(user string) (model.Todo, error) {
	priority := c.Priority
	if priority == "" {
		priority = constant.PriorityMedium
	}

	var dueDate *time.Time

	if c.DueDate != "" {
		parsed, err := ParseDueDate(c.DueDate)
		if err != nil {
			return model.Todo{}, err
		}

		dueDate = &parsed
	}

	var categoryID *string
	if c.CategoryID != "" {
		categoryID = &c.CategoryID
	}

	return model.Todo{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Completed:   false,
		Priority:    priority,
		DueDate:     dueDate,
		CategoryID:  categoryID,
		UserID:      user,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateTodoRequest carries partial updates. A nil field was absent from the
// request body and leaves the stored value untouched; title and description
// additionally ignore empty strings, so neither can be cleared. An empty
// due_date or category_id clears the stored value.
type UpdateTodoRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Completed   *bool   `json:"completed"   validate:"omitempty"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"    validate:"omitempty"`
	CategoryID  *string `json:"category_id" validate:"omitempty"`
}

func (u *UpdateTodoRequest) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil &&
		u.Priority == nil && u.DueDate == nil && u.CategoryID == nil
}

func (u *UpdateTodoRequest) ToUpdateMap(user string) (map[string]any, error) {
	fields := map[string]any{}

	if u.Title != nil && *u.Title != "" {
		fields[model.FieldTitle] = *u.Title
	}

	if u.Description != nil && *u.Description != "" {
		fields[model.FieldDescription] = *u.Description
	}

	if u.Completed != nil {
		fields[model.FieldCompleted] = *u.Completed
	}

	if u.Priority != nil && *u.Priority != "" {
		fields[model.FieldPriority] = *u.Priority
	}

	if u.DueDate != nil {
		if *u.DueDate == "" {
			fields[model.FieldDueDate] = nil
		} else {
			parsed, err := ParseDueDate(*u.DueDate)
			if err != nil {
				return nil, err
			}

			fields[model.FieldDueDate] = parsed
		}
	}

	if u.CategoryID != nil {
		if *u.CategoryID == "" {
			fields[model.FieldCategoryID] = nil
		} else {
			fields[model.FieldCategoryID] = *u.CategoryID
		}
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	return fields, nil
}

type CategoryRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TodoResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Completed   bool         `json:"completed"`
	Priority    string       `json:"priority"`
	DueDate     *string      `json:"due_date"`
	Category    *CategoryRef `json:"category"`
	CreatedAt   string       `json:"created_at"`
}

func (r *TodoResponse) FromModel(mod model.Todo) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Description = mod.Description
	r.Completed = mod.Completed
	r.Priority = mod.Priority
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateTimeFormat)

	if mod.DueDate != nil {
		formatted := timezone.Format(*mod.DueDate, constant.DateTimeFormat)
		r.DueDate = &formatted
	}

	if mod.CategoryID != nil && mod.CategoryName != nil && mod.CategoryColor != nil {
		r.Category = &CategoryRef{
			ID:    *mod.CategoryID,
			Name:  *mod.CategoryName,
			Color: *mod.CategoryColor,
		}
	}
}

func TodosFromModels(models []model.Todo) []TodoResponse {
	todos := make([]TodoResponse, len(models))
	for i, mod := range models {
		todos[i].FromModel(mod)
	}

	return todos
}

type CreateTodoResponse struct {
	ID string `json:"id"`
}
