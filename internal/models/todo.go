// Package modelsはTodoとリクエストボディの形を定義します。
package models

import (
	"time"
)

// Todo はToDoアイテムのデータベース構造体を表します。
// JSONタグ: クライアントとの通信用
type Todo struct {
	// ID: 主キー (UUIDのハイフン無し16進32文字、サーバー側で採番)
	ID string `json:"id"`

	// Title: タスクのタイトル（必須項目）
	Title string `json:"title"`

	// Description: 詳細 (NULL許容。未設定時はJSONでnull)
	Description *string `json:"description"`

	// Completed: 完了状態
	Completed bool `json:"completed"`

	// CreatedAt: 作成日時 (UTC)
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt: 更新日時 (UTC)
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTodoRequest は新規作成リクエストのボディです。
// bindingタグ: Ginでのリクエストバリデーション用 (titleは必須かつ空文字不可)
type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// UpdateTodoRequest は更新リクエストのボディです。
// Title/Completed は省略時に現在の値を維持します。
// Description は常に上書きされます (省略・明示的なnullはどちらもクリア)。
type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// 💡 補足:
// - `binding:"required"` は、Ginのc.ShouldBindJSON()が呼ばれたときに、
//   JSONボディにこのフィールドが存在しない、またはゼロ値(空文字列)だった場合にエラーを発生させます。
// - タイトルの検証はバイト長1以上の判定のみで、前後の空白はトリムしません。
