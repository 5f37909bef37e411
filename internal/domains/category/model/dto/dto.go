package dto

import (
	"taskdesk/internal/domains/category/model"
	"taskdesk/shared/constant"
	gModel "taskdesk/shared/model"
	"taskdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name  string `json:"name"  validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	color := c.Color
	if color == "" {
		color = constant.DefaultCategoryColor
	}

	return model.Category{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Color:  color,
		UserID: user,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r *CategoryResponse) FromModel(mod model.Category) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Color = mod.Color
}

func CategoriesFromModels(models []model.Category) []CategoryResponse {
	categories := make([]CategoryResponse, len(models))
	for i, mod := range models {
		categories[i].FromModel(mod)
	}

	return categories
}

type CreateCategoryResponse struct {
	ID string `json:"id"`
}
