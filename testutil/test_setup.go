// Package testutil はテスト用のセットアップヘルパーを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Stella2211/tanstack-start-todo/internal/config"
	"github.com/Stella2211/tanstack-start-todo/internal/database"
	"github.com/Stella2211/tanstack-start-todo/internal/models"
	"github.com/Stella2211/tanstack-start-todo/internal/repositories"
	"github.com/Stella2211/tanstack-start-todo/internal/routes"
)

// SetupTestDB はテスト用のストアとルーターをセットアップします。
// テストごとに一時ディレクトリ内のsqliteファイルを使うため、テスト間で状態を共有しません。
func SetupTestDB(t *testing.T) (*sql.DB, *gin.Engine, *repositories.TodoRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "todos_test.db")

	db, err := database.Open(&cfg.Database)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { db.Close() })

	router := routes.SetupRouter(db, cfg)
	todoRepo := repositories.NewTodoRepository(db)

	return db, router, todoRepo
}

// CreateTestTodo はAPI経由でテスト用のTODOを作成します。
func CreateTestTodo(t *testing.T, router *gin.Engine, title string) *models.Todo {
	t.Helper()

	payload := map[string]interface{}{"title": title}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/api/todos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code, "TODO作成に失敗しました: %s", resp.Body.String())

	var createdTodo models.Todo
	err := json.Unmarshal(resp.Body.Bytes(), &createdTodo)
	require.NoError(t, err)
	return &createdTodo
}

// SeedTodo はリポジトリ経由でテスト用のTODOを作成します。
// completed が true の場合は作成後にトグルします。
func SeedTodo(t *testing.T, repo *repositories.TodoRepository, title string, completed bool) *models.Todo {
	t.Helper()

	created, err := repo.Create(title)
	require.NoError(t, err)
	if !completed {
		return created
	}

	toggled, err := repo.Toggle(created.ID)
	require.NoError(t, err)
	return toggled
}

// CountTodos は todos テーブルの行数を返します。
func CountTodos(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM todos").Scan(&count)
	require.NoError(t, err)
	return count
}
