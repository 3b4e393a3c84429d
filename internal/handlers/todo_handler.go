// Package handlers はHTTPリクエストを処理するハンドラーを提供します。
package handlers

import (
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-api/internal/apperrors"
	"todo-api/internal/models"
	"todo-api/internal/repositories"
	"todo-api/internal/services"
)

// TodoHandler はTodo関連のハンドラーを管理します。
// 各ハンドラーは decode → validate → サービス呼び出し → encode の
// 直線的なパイプラインで、リトライや状態の保持はしません。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// parseTodoID はパスパラメータのIDを正規形 (16進32文字) に変換します。
// ハイフン付きのUUID表記も受け付けます。
// 解釈失敗は 400 ではなく 500 として報告されます (apperrors 参照)。
func parseTodoID(c *gin.Context) (string, error) {
	u, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(u[:]), nil
}

// CreateTodoHandler は新しいTodoを作成します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.JSON(c, apperrors.NewValidation(err))
		return
	}

	createdTodo, err := h.todoService.CreateTodo(c.Request.Context(), &req)
	if err != nil {
		apperrors.JSON(c, apperrors.NewStorage(err))
		return
	}
	c.JSON(http.StatusCreated, createdTodo)
}

// GetTodosHandler はTodoリストを取得します。0件の場合は空配列を返します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	todos, err := h.todoService.GetTodos(c.Request.Context())
	if err != nil {
		apperrors.JSON(c, apperrors.NewStorage(err))
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodoByIDHandler は指定IDのTodoを取得します。
func (h *TodoHandler) GetTodoByIDHandler(c *gin.Context) {
	id, err := parseTodoID(c)
	if err != nil {
		apperrors.JSON(c, apperrors.NewIdentifierDecode(err))
		return
	}

	todo, err := h.todoService.GetTodoByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			apperrors.JSON(c, apperrors.NewNotFound())
			return
		}
		apperrors.JSON(c, apperrors.NewStorage(err))
		return
	}
	c.JSON(http.StatusOK, todo)
}

// UpdateTodoHandler はTodoを更新します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id, err := parseTodoID(c)
	if err != nil {
		apperrors.JSON(c, apperrors.NewIdentifierDecode(err))
		return
	}

	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.JSON(c, apperrors.NewValidation(err))
		return
	}

	updatedTodo, err := h.todoService.UpdateTodo(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			apperrors.JSON(c, apperrors.NewNotFound())
			return
		}
		apperrors.JSON(c, apperrors.NewStorage(err))
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// DeleteTodoHandler はTodoを削除します。成功時は 204 を返します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id, err := parseTodoID(c)
	if err != nil {
		apperrors.JSON(c, apperrors.NewIdentifierDecode(err))
		return
	}

	err = h.todoService.DeleteTodo(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			apperrors.JSON(c, apperrors.NewNotFound())
			return
		}
		apperrors.JSON(c, apperrors.NewStorage(err))
		return
	}
	c.Status(http.StatusNoContent)
}
