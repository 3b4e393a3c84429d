package services_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/models"
	"todo-api/internal/repositories"
	"todo-api/internal/services"
	"todo-api/testutil"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestTodoService_CreateTodo(t *testing.T) {
	repo := testutil.NewFakeTodoRepository()
	svc := services.NewTodoService(repo)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, &models.CreateTodoRequest{Title: "Buy milk"})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Nil(t, created.Description)
	assert.False(t, created.Completed)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt), "created_at and updated_at must match on creation")
	assert.Equal(t, "UTC", created.CreatedAt.Location().String())

	// リポジトリに保存された内容と返り値が一致すること
	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestTodoService_CreateTodo_MintsFreshIDs(t *testing.T) {
	repo := testutil.NewFakeTodoRepository()
	svc := services.NewTodoService(repo)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		created, err := svc.CreateTodo(ctx, &models.CreateTodoRequest{Title: "t"})
		require.NoError(t, err)
		require.False(t, seen[created.ID])
		seen[created.ID] = true
	}
}

func TestTodoService_UpdateTodo_MergeRules(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*services.TodoService, *models.Todo) {
		t.Helper()
		repo := testutil.NewFakeTodoRepository()
		svc := services.NewTodoService(repo)
		desc := "original description"
		created, err := svc.CreateTodo(ctx, &models.CreateTodoRequest{Title: "original", Description: &desc})
		require.NoError(t, err)
		return svc, created
	}

	// --- Title/Completed は省略時に現在の値を維持すること ---
	t.Run("Absent title and completed keep current values", func(t *testing.T) {
		svc, created := seed(t)
		updated, err := svc.UpdateTodo(ctx, created.ID, &models.UpdateTodoRequest{
			Description: strPtr("replaced"),
		})
		require.NoError(t, err)
		assert.Equal(t, "original", updated.Title)
		assert.False(t, updated.Completed)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "replaced", *updated.Description)
	})

	// --- Description はリクエストに無ければnilで上書きされること ---
	t.Run("Absent description clears the column", func(t *testing.T) {
		svc, created := seed(t)
		updated, err := svc.UpdateTodo(ctx, created.ID, &models.UpdateTodoRequest{
			Completed: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "original", updated.Title)
		assert.True(t, updated.Completed)
		assert.Nil(t, updated.Description, "description is always replaced by the request value")
	})

	// --- すべてのフィールドを指定した場合 ---
	t.Run("All fields present replace everything", func(t *testing.T) {
		svc, created := seed(t)
		updated, err := svc.UpdateTodo(ctx, created.ID, &models.UpdateTodoRequest{
			Title:       strPtr("new title"),
			Description: strPtr("new description"),
			Completed:   boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "new description", *updated.Description)
		assert.True(t, updated.Completed)
	})

	// --- 更新のたびにupdated_atが進み、created_atは不変であること ---
	t.Run("Update advances updated_at only", func(t *testing.T) {
		svc, created := seed(t)
		updated, err := svc.UpdateTodo(ctx, created.ID, &models.UpdateTodoRequest{Completed: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})
}

func TestTodoService_UpdateTodo_NotFound(t *testing.T) {
	repo := testutil.NewFakeTodoRepository()
	svc := services.NewTodoService(repo)

	_, err := svc.UpdateTodo(context.Background(), "00000000000000000000000000000000", &models.UpdateTodoRequest{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, repositories.ErrTodoNotFound)
}

func TestTodoService_DeleteTodo(t *testing.T) {
	repo := testutil.NewFakeTodoRepository()
	svc := services.NewTodoService(repo)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, &models.CreateTodoRequest{Title: "Buy milk"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTodo(ctx, created.ID))

	// 2回目以降はErrTodoNotFound
	assert.ErrorIs(t, svc.DeleteTodo(ctx, created.ID), repositories.ErrTodoNotFound)
	assert.ErrorIs(t, svc.DeleteTodo(ctx, created.ID), repositories.ErrTodoNotFound)
}
