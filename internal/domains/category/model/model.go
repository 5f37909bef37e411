package model

import "taskdesk/shared/model"

const (
	TableName  = "categories"
	EntityName = "category"

	FieldID     = "id"
	FieldName   = "name"
	FieldColor  = "color"
	FieldUserID = "user_id"
)

type Category struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Color  string `db:"color"`
	UserID string `db:"user_id"`
	model.Metadata
}
