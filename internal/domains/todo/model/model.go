package model

import (
	"taskdesk/shared/model"
	"time"
)

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCompleted   = "completed"
	FieldPriority    = "priority"
	FieldDueDate     = "due_date"
	FieldCategoryID  = "category_id"
	FieldUserID      = "user_id"
)

type Todo struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Completed   bool       `db:"completed"`
	Priority    string     `db:"priority"`
	DueDate     *time.Time `db:"due_date"`
	CategoryID  *string    `db:"category_id"`
	UserID      string     `db:"user_id"`

	// Projected from the owning category so a listing needs no second query.
	CategoryName  *string `db:"category_name"  table:"categories" column:"name"`
	CategoryColor *string `db:"category_color" table:"categories" column:"color"`

	model.Metadata
}

func (Todo) GetJoinQuery() string {
	return "LEFT JOIN categories ON categories.id = todos.category_id"
}
