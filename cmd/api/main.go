package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"todo-api/internal/database"
	"todo-api/internal/routes"
)

func main() {
	// .env が無い環境 (コンテナ等) では環境変数をそのまま使う
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := database.InitDB()
	defer db.Close()

	// スキーマを保証してからリクエストを受け付ける
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Fatal: Failed to ensure schema: %v", err)
	}

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// サーバー起動
	log.Printf("Server listening on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
