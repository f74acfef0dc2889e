// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Stella2211/tanstack-start-todo/internal/config"
	"github.com/Stella2211/tanstack-start-todo/internal/handlers"
	"github.com/Stella2211/tanstack-start-todo/internal/repositories"
	"github.com/Stella2211/tanstack-start-todo/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *sql.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS対策 (フロントエンドは別オリジンで動く)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// リポジトリ → サービス → ハンドラー の順に組み立てる
	todoRepo := repositories.NewTodoRepository(db)
	todoService := services.NewTodoService(todoRepo)
	todoHandler := handlers.NewTodoHandler(todoService)

	// ルーティング
	r.GET("/api/hello", HelloHandler)
	r.GET("/api/dbcheck", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database connection failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
	})

	r.GET("/api/todos", todoHandler.GetTodosHandler)
	r.POST("/api/todos", todoHandler.CreateTodoHandler)
	r.PUT("/api/todos/:id", todoHandler.UpdateTodoHandler)
	r.POST("/api/todos/:id/toggle", todoHandler.ToggleTodoHandler)
	r.DELETE("/api/todos/:id", todoHandler.DeleteTodoHandler)
	r.DELETE("/api/todos/completed", todoHandler.DeleteCompletedHandler)

	return r
}

// HelloHandler はシンプルなヘルスチェックエンドポイントです。
func HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from Go Backend!"})
}
