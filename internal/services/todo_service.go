// Package services はアプリケーションのビジネスロジックを扱います。
package services

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"todo-api/internal/models"
	"todo-api/internal/repositories"
)

// TodoService はTodo関連のビジネスロジックを扱います。
// ID採番・タイムスタンプ付与・更新時のフィールドマージを担当します。
type TodoService struct {
	todoRepo repositories.TodoRepository
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(todoRepo repositories.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// newTodoID はランダムなUUIDをハイフン無しの16進32文字に変換して返します。
// この形式がワイヤ上でもデータベース上でも正規形です。
func newTodoID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// CreateTodo は新しいTodoを作成します。
// IDと作成・更新日時 (同一時刻) をここで確定させます。
func (s *TodoService) CreateTodo(ctx context.Context, req *models.CreateTodoRequest) (*models.Todo, error) {
	now := time.Now().UTC()
	t := &models.Todo{
		ID:          newTodoID(),
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.todoRepo.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTodos はすべてのTodoを作成日時の降順で取得します。
func (s *TodoService) GetTodos(ctx context.Context) ([]models.Todo, error) {
	return s.todoRepo.FindAll(ctx)
}

// GetTodoByID は指定IDのTodoを取得します。
func (s *TodoService) GetTodoByID(ctx context.Context, id string) (*models.Todo, error) {
	return s.todoRepo.FindByID(ctx, id)
}

// UpdateTodo は現在の行を読み、リクエストの内容をマージして書き戻します。
// Title/Completed はリクエストに無ければ現在の値を維持します。
// Description はリクエストの値で常に上書きします (省略・nullはクリア)。
// 読み書きの間はトランザクションで保護しないため、同一IDへの並行更新は後勝ちです。
func (s *TodoService) UpdateTodo(ctx context.Context, id string, req *models.UpdateTodoRequest) (*models.Todo, error) {
	current, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	updated.Description = req.Description
	if req.Completed != nil {
		updated.Completed = *req.Completed
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.todoRepo.Update(ctx, id, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTodo は指定IDのTodoを削除します。
// 削除対象が無い場合は ErrTodoNotFound を返します。
func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	rowsAffected, err := s.todoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repositories.ErrTodoNotFound
	}
	return nil
}
