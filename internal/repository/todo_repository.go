package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tomlord1122/todo-api/internal/domain"
)

// TodoRepository is the data access contract. Each method issues exactly
// one statement; counts are rows affected as reported by the store.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (int64, error)
	GetAll(ctx context.Context) ([]domain.Todo, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status bool) (int64, error)
}

type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a TodoRepository backed by the shared pool.
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

// Create runs INSERT INTO todos (id, title, status) VALUES (...).
func (r *gormTodoRepository) Create(ctx context.Context, todo *domain.Todo) (int64, error) {
	result := r.db.WithContext(ctx).Create(todo)
	if result.Error != nil {
		return 0, classify("insert todo", result.Error)
	}
	return result.RowsAffected, nil
}

// GetAll runs SELECT id, title, status FROM todos. No ordering is imposed.
func (r *gormTodoRepository) GetAll(ctx context.Context) ([]domain.Todo, error) {
	todos := make([]domain.Todo, 0)
	result := r.db.WithContext(ctx).Select("id", "title", "status").Find(&todos)
	if result.Error != nil {
		return nil, classify("select todos", result.Error)
	}
	return todos, nil
}

// UpdateStatus runs UPDATE todos SET status = $1 WHERE id = $2. Zero rows
// affected is not an error.
func (r *gormTodoRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status bool) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Todo{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return 0, classify("update todo status", result.Error)
	}
	return result.RowsAffected, nil
}
