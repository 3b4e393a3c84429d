// Package testutil はテスト用のセットアップ補助を提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	_ "github.com/go-sql-driver/mysql"

	"todo-api/internal/database"
	"todo-api/internal/models"
	"todo-api/internal/repositories"
	"todo-api/internal/routes"
)

// SetupTestDB はテスト用のデータベース接続を確立し、テーブルを作り直します。
// TEST_DB_HOST が未設定の場合、MySQLを必要とするテストはスキップされます。
func SetupTestDB(t *testing.T) (*sql.DB, *gin.Engine, *repositories.MySQLTodoRepository) {
	_ = godotenv.Load("../../.env")

	dbUser := os.Getenv("TEST_DB_USER")
	dbPass := os.Getenv("TEST_DB_PASS")
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbName := os.Getenv("TEST_DB_NAME")

	if dbHost == "" {
		t.Skip("TEST_DB_HOST not set; skipping tests that require MySQL")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC", dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("Failed to open database connection: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("Failed to ping database: %v", err)
	}

	// テストのたびにクリーンな状態にする
	if _, err := db.Exec("DROP TABLE IF EXISTS todos"); err != nil {
		t.Fatalf("Failed to drop todos table: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("Failed to create todos table: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := routes.SetupRouter(db)
	todoRepo := repositories.NewMySQLTodoRepository(db)

	return db, router, todoRepo
}

// NewTestRouter はインメモリのリポジトリを使うテスト用ルーターを構築します。
// MySQLは不要です。
func NewTestRouter(repo repositories.TodoRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return routes.NewRouter(nil, repo)
}

// CreateTestTodo はルーター経由でTodoを作成し、レスポンスのTodoを返します。
func CreateTestTodo(t *testing.T, router *gin.Engine, title string, description *string) models.Todo {
	t.Helper()

	payload := models.CreateTodoRequest{Title: title, Description: description}
	jsonValue, err := json.Marshal(payload)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/todos", bytes.NewBuffer(jsonValue))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, "Expected HTTP Status Code 201 Created")

	var created models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}
