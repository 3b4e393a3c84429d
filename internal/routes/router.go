// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"todo-api/internal/handlers"
	"todo-api/internal/repositories"
	"todo-api/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *sql.DB) *gin.Engine {
	todoRepo := repositories.NewMySQLTodoRepository(db)
	return NewRouter(db, todoRepo)
}

// NewRouter は指定されたリポジトリでルーターを構築します。
// テストではインメモリのリポジトリを渡せます。
func NewRouter(db *sql.DB, todoRepo repositories.TodoRepository) *gin.Engine {
	r := gin.Default()

	// CORS対策
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	// サービス
	todoService := services.NewTodoService(todoRepo)

	// ハンドラー
	todoHandler := handlers.NewTodoHandler(todoService)

	// ルーティング
	r.GET("/", HelloHandler)
	r.GET("/dbcheck", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database connection failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
	})

	r.POST("/todos", todoHandler.CreateTodoHandler)
	r.GET("/todos", todoHandler.GetTodosHandler)
	r.GET("/todos/:id", todoHandler.GetTodoByIDHandler)
	r.PUT("/todos/:id", todoHandler.UpdateTodoHandler)
	r.DELETE("/todos/:id", todoHandler.DeleteTodoHandler)

	return r
}

// HelloHandler はルートパスの簡単な挨拶を返します。
func HelloHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello, World!")
}
