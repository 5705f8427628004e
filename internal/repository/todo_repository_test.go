package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Tomlord1122/todo-api/internal/database/dbtest"
	"github.com/Tomlord1122/todo-api/internal/domain"
)

const createTodosTable = `CREATE TABLE todos (
	id uuid PRIMARY KEY,
	title text NOT NULL,
	status boolean NOT NULL
)`

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := dbtest.StartPostgres(t)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Exec(createTodosTable).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(5)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGormTodoRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormTodoRepository(db)
	ctx := context.Background()

	reset := func(t *testing.T) {
		t.Helper()
		require.NoError(t, db.Exec("DELETE FROM todos").Error)
	}

	t.Run("empty table lists as empty slice", func(t *testing.T) {
		reset(t)
		todos, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})

	t.Run("create then list", func(t *testing.T) {
		reset(t)
		todo := &domain.Todo{ID: uuid.New(), Title: "write tests"}
		rows, err := repo.Create(ctx, todo)
		require.NoError(t, err)
		assert.EqualValues(t, 1, rows)

		todos, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.Equal(t, *todo, todos[0])
		assert.False(t, todos[0].Status)
	})

	t.Run("duplicate id is a constraint error", func(t *testing.T) {
		reset(t)
		id := uuid.New()
		_, err := repo.Create(ctx, &domain.Todo{ID: id, Title: "a"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &domain.Todo{ID: id, Title: "b"})
		assert.ErrorIs(t, err, domain.ErrConstraint)
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
	})

	t.Run("update status toggles and ignores unknown ids", func(t *testing.T) {
		reset(t)
		todo := &domain.Todo{ID: uuid.New(), Title: "toggle"}
		_, err := repo.Create(ctx, todo)
		require.NoError(t, err)

		rows, err := repo.UpdateStatus(ctx, todo.ID, true)
		require.NoError(t, err)
		assert.EqualValues(t, 1, rows)

		rows, err = repo.UpdateStatus(ctx, uuid.New(), true)
		require.NoError(t, err)
		assert.Zero(t, rows)

		todos, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.True(t, todos[0].Status)

		_, err = repo.UpdateStatus(ctx, todo.ID, false)
		require.NoError(t, err)
		todos, err = repo.GetAll(ctx)
		require.NoError(t, err)
		assert.False(t, todos[0].Status)
	})

	t.Run("concurrent creates keep every row", func(t *testing.T) {
		reset(t)
		const n = 20
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
	})

	t.Run("missing table is a storage error", func(t *testing.T) {
		require.NoError(t, db.Exec("ALTER TABLE todos RENAME TO todos_gone").Error)
		t.Cleanup(func() { db.Exec("ALTER TABLE todos_gone RENAME TO todos") })

		_, err := repo.GetAll(ctx)
		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}
