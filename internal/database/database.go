// Package database はデータベース接続とスキーマの初期化を提供します。
package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// GetDSN は環境変数からMySQL接続文字列 (DSN) を構築します。
func GetDSN() string {
	// main.go で godotenv.Load() が呼び出されるため、ここでは省略
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	// loc=UTC: タイムスタンプは常にUTCで保存・取得する
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC", user, pass, host, port, name)
}

// InitDB はデータベース接続を初期化します。
func InitDB() *sql.DB {
	dsn := GetDSN()
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Fatal: Failed to open database connection: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		log.Fatalf("Fatal: Failed to ping database: %v", err)
	}
	log.Println("Successfully connected to MySQL database!")
	return db
}

// EnsureSchema はtodosテーブルが存在することを保証します。
// 冪等なので起動のたびに呼び出せます。
func EnsureSchema(db *sql.DB) error {
	// DATETIME(6): updated_at の単調増加をマイクロ秒精度で保つ
	createTodoTableSQL := `
		CREATE TABLE IF NOT EXISTS todos (
			id VARCHAR(32) NOT NULL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			updated_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
		);`
	if _, err := db.Exec(createTodoTableSQL); err != nil {
		return fmt.Errorf("could not create todos table: %w", err)
	}
	return nil
}
