package testutil

import (
	"context"
	"sort"
	"sync"

	"todo-api/internal/models"
	"todo-api/internal/repositories"
)

// FakeTodoRepository はTodoRepositoryのインメモリ実装です。
// MySQLを用意できないユニットテストで使います。
// Err を設定するとすべての操作がそのエラーを返します (障害系のテスト用)。
type FakeTodoRepository struct {
	mu    sync.RWMutex
	todos map[string]models.Todo

	Err error
}

// NewFakeTodoRepository は空のFakeTodoRepositoryを作成します。
func NewFakeTodoRepository() *FakeTodoRepository {
	return &FakeTodoRepository{todos: make(map[string]models.Todo)}
}

// Insert は新しいTodoを保存します。
func (r *FakeTodoRepository) Insert(ctx context.Context, t *models.Todo) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.todos[t.ID] = *t
	return nil
}

// FindAll はすべてのTodoを作成日時の降順で返します。
func (r *FakeTodoRepository) FindAll(ctx context.Context) ([]models.Todo, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	todos := make([]models.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		todos = append(todos, t)
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
	return todos, nil
}

// FindByID は指定IDのTodoを返します。
func (r *FakeTodoRepository) FindByID(ctx context.Context, id string) (*models.Todo, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.todos[id]
	if !ok {
		return nil, repositories.ErrTodoNotFound
	}
	return &t, nil
}

// Update は指定IDのTodoを書き換えます。
func (r *FakeTodoRepository) Update(ctx context.Context, id string, t *models.Todo) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[id]; !ok {
		return repositories.ErrTodoNotFound
	}
	updated := *t
	updated.ID = id
	r.todos[id] = updated
	return nil
}

// Delete は指定IDのTodoを削除し、削除された件数を返します。
func (r *FakeTodoRepository) Delete(ctx context.Context, id string) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[id]; !ok {
		return 0, nil
	}
	delete(r.todos, id)
	return 1, nil
}

// Len は保存されている件数を返します。
func (r *FakeTodoRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.todos)
}
