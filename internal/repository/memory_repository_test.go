package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/todo-api/internal/domain"
)

func TestMemoryRepositoryCreateAndGetAll(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()

	todos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)

	first := &domain.Todo{ID: uuid.New(), Title: "first"}
	second := &domain.Todo{ID: uuid.New(), Title: "second"}
	for _, todo := range []*domain.Todo{first, second} {
		rows, err := repo.Create(ctx, todo)
		require.NoError(t, err)
		assert.EqualValues(t, 1, rows)
	}

	todos, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Todo{*first, *second}, todos)
}

func TestMemoryRepositoryDuplicateID(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.Create(ctx, &domain.Todo{ID: id, Title: "a"})
	require.NoError(t, err)

	rows, err := repo.Create(ctx, &domain.Todo{ID: id, Title: "b"})
	assert.ErrorIs(t, err, domain.ErrConstraint)
	assert.Zero(t, rows)

	todos, _ := repo.GetAll(ctx)
	assert.Len(t, todos, 1)
}

func TestMemoryRepositoryUpdateStatus(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()
	todo := &domain.Todo{ID: uuid.New(), Title: "toggle"}
	_, err := repo.Create(ctx, todo)
	require.NoError(t, err)

	rows, err := repo.UpdateStatus(ctx, todo.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = repo.UpdateStatus(ctx, uuid.New(), true)
	require.NoError(t, err)
	assert.Zero(t, rows)

	todos, _ := repo.GetAll(ctx)
	require.Len(t, todos, 1)
	assert.True(t, todos[0].Status)
	assert.Equal(t, "toggle", todos[0].Title)
}

func TestMemoryRepositoryGetAllReturnsCopy(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()
	_, _ = repo.Create(ctx, &domain.Todo{ID: uuid.New(), Title: "a"})

	todos, _ := repo.GetAll(ctx)
	todos[0].Title = "changed"

	again, _ := repo.GetAll(ctx)
	assert.Equal(t, "a", again[0].Title)
}

func TestMemoryRepositoryCanceledContext(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, &domain.Todo{ID: uuid.New(), Title: "a"})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	_, err = repo.GetAll(ctx)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	_, err = repo.UpdateStatus(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestMemoryRepositoryConcurrentCreates(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, &domain.Todo{ID: uuid.New(), Title: "concurrent"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	todos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, n)
}
