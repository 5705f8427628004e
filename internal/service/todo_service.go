package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Tomlord1122/todo-api/internal/domain"
	"github.com/Tomlord1122/todo-api/internal/repository"
)

// CreateTodoRequest is the body of POST /api/todos. Title is a pointer so
// an absent field can be told apart from an empty one in errors.
type CreateTodoRequest struct {
	Title *string `json:"title"`
}

// UpdateTodoStatusRequest is the body of PATCH /api/todos/{todo_id}.
type UpdateTodoStatusRequest struct {
	Status *bool `json:"status"`
}

// TodoResponse is how a todo is listed.
type TodoResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Status bool      `json:"status"`
}

// TodoService defines the operations exposed over HTTP.
type TodoService interface {
	// CreateTodo inserts a new incomplete todo with a generated id.
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*TodoResponse, error)

	// GetAllTodos returns every stored todo in store order.
	GetAllTodos(ctx context.Context) ([]TodoResponse, error)

	// UpdateTodoStatus sets the completion flag. An unknown id is not an error.
	UpdateTodoStatus(ctx context.Context, id uuid.UUID, req UpdateTodoStatusRequest) error
}

type todoService struct {
	repo  repository.TodoRepository
	newID func() uuid.UUID
}

// NewTodoService creates a TodoService on top of repo.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{
		repo:  repo,
		newID: uuid.New,
	}
}

func (s *todoService) CreateTodo(ctx context.Context, req CreateTodoRequest) (*TodoResponse, error) {
	if req.Title == nil {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if *req.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
	}

	todo := &domain.Todo{
		ID:     s.newID(),
		Title:  *req.Title,
		Status: false,
	}

	rows, err := s.repo.Create(ctx, todo)
	if err != nil {
		return nil, err
	}
	// A single-row insert reports one row; anything else means the store
	// did something we did not ask for.
	if rows != 1 {
		return nil, fmt.Errorf("insert todo: %w: %d", domain.ErrUnexpectedRows, rows)
	}

	return toResponse(*todo), nil
}

func (s *todoService) GetAllTodos(ctx context.Context) ([]TodoResponse, error) {
	todos, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		responses = append(responses, *toResponse(todo))
	}
	return responses, nil
}

func (s *todoService) UpdateTodoStatus(ctx context.Context, id uuid.UUID, req UpdateTodoStatusRequest) error {
	if req.Status == nil {
		return fmt.Errorf("%w: status is required", domain.ErrInvalidInput)
	}

	// Zero rows affected still succeeds.
	if _, err := s.repo.UpdateStatus(ctx, id, *req.Status); err != nil {
		return err
	}
	return nil
}

func toResponse(todo domain.Todo) *TodoResponse {
	return &TodoResponse{
		ID:     todo.ID,
		Title:  todo.Title,
		Status: todo.Status,
	}
}
