// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"todo-api/internal/models"
)

// ErrTodoNotFound はTODOが見つからない場合のエラーです。
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository はTodoの永続化操作を定義します。
// IDはハイフン無し16進32文字の正規形の文字列として受け渡します。
type TodoRepository interface {
	// Insert は新しいTodoを挿入します。
	Insert(ctx context.Context, t *models.Todo) error

	// FindAll はすべてのTodoを作成日時の降順で取得します。
	// 0件は空のスライスを返し、エラーにはなりません。
	FindAll(ctx context.Context) ([]models.Todo, error)

	// FindByID は指定IDのTodoを取得します。
	// 存在しない場合は ErrTodoNotFound を返します。
	FindByID(ctx context.Context, id string) (*models.Todo, error)

	// Update は指定IDの行のtitle/description/completed/updated_atを書き換えます。
	// 対象行が無い場合は ErrTodoNotFound を返します。
	Update(ctx context.Context, id string, t *models.Todo) error

	// Delete は指定IDの行を削除し、削除された行数を返します。
	Delete(ctx context.Context, id string) (int64, error)
}

// MySQLTodoRepository はTodoRepositoryのMySQL実装です。
type MySQLTodoRepository struct {
	DB *sql.DB
}

// NewMySQLTodoRepository は新しいMySQLTodoRepositoryインスタンスを作成します。
func NewMySQLTodoRepository(db *sql.DB) *MySQLTodoRepository {
	return &MySQLTodoRepository{DB: db}
}

// Insert は新しいTodoタスクをデータベースに挿入します。
func (r *MySQLTodoRepository) Insert(ctx context.Context, t *models.Todo) error {
	query := "INSERT INTO todos (id, title, description, completed, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"

	_, err := r.DB.ExecContext(ctx, query, t.ID, t.Title, t.Description, t.Completed, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		log.Printf("Failed to insert todo: %v", err)
		return fmt.Errorf("could not insert todo: %w", err)
	}

	return nil
}

// FindAll はすべてのTodoタスクをデータベースから取得します。
func (r *MySQLTodoRepository) FindAll(ctx context.Context) ([]models.Todo, error) {
	query := "SELECT id, title, description, completed, created_at, updated_at FROM todos ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Failed to query todos: %v", err)
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var t models.Todo
		err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			log.Printf("Failed to scan todo: %v", err)
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		t.CreatedAt = t.CreatedAt.UTC()
		t.UpdatedAt = t.UpdatedAt.UTC()
		todos = append(todos, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// FindByID は指定されたIDのTodoタスクをデータベースから取得します。
func (r *MySQLTodoRepository) FindByID(ctx context.Context, id string) (*models.Todo, error) {
	query := "SELECT id, title, description, completed, created_at, updated_at FROM todos WHERE id = ?"

	var t models.Todo
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Failed to query todo by ID: %v", err)
		return nil, fmt.Errorf("could not query todo: %w", err)
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()

	return &t, nil
}

// Update は指定されたIDのTodoタスクを更新します。
// updated_at が毎回変わるため、変更行数0は「行が存在しない」ことを意味します。
func (r *MySQLTodoRepository) Update(ctx context.Context, id string, t *models.Todo) error {
	query := "UPDATE todos SET title = ?, description = ?, completed = ?, updated_at = ? WHERE id = ?"

	result, err := r.DB.ExecContext(ctx, query, t.Title, t.Description, t.Completed, t.UpdatedAt, id)
	if err != nil {
		log.Printf("Failed to update todo: %v", err)
		return fmt.Errorf("could not update todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// Delete は指定されたIDのTodoタスクを削除し、削除された行数を返します。
// 0件の扱い (not found など) は呼び出し側が決めます。
func (r *MySQLTodoRepository) Delete(ctx context.Context, id string) (int64, error) {
	query := "DELETE FROM todos WHERE id = ?"

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("Failed to delete todo: %v", err)
		return 0, fmt.Errorf("could not delete todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get rows affected: %w", err)
	}

	return rowsAffected, nil
}
