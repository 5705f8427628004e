package domain

import "github.com/google/uuid"

// Todo is the only persisted entity. The todos table is expected to exist.
type Todo struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title  string    `gorm:"type:text;not null" json:"title"`
	Status bool      `gorm:"not null" json:"status"`
}

// TableName pins the table name so GORM does not pluralize on its own.
func (Todo) TableName() string {
	return "todos"
}
