package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Tomlord1122/todo-api/internal/domain"
)

// MemoryTodoRepository keeps todos in process memory, in insertion order.
// It satisfies TodoRepository so handlers and services can run without a
// database.
type MemoryTodoRepository struct {
	mu    sync.Mutex
	items []domain.Todo
	index map[uuid.UUID]int
}

// NewMemoryTodoRepository returns an empty in-memory store.
func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{
		items: make([]domain.Todo, 0),
		index: make(map[uuid.UUID]int),
	}
}

func (r *MemoryTodoRepository) Create(ctx context.Context, todo *domain.Todo) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, classify("insert todo", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[todo.ID]; ok {
		return 0, fmt.Errorf("insert todo: %w: duplicate id %s", domain.ErrConstraint, todo.ID)
	}
	r.index[todo.ID] = len(r.items)
	r.items = append(r.items, *todo)
	return 1, nil
}

func (r *MemoryTodoRepository) GetAll(ctx context.Context) ([]domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify("select todos", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Todo, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryTodoRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, classify("update todo status", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return 0, nil
	}
	r.items[i].Status = status
	return 1, nil
}
