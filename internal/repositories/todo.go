// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Stella2211/tanstack-start-todo/internal/models"
)

// ErrTodoNotFound はTODOが見つからない場合のエラーです。
// 呼び出し側は errors.Is で分岐します。例外的な失敗ではなく「不在」を表します。
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository はtodosテーブルへのデータベース操作を行うための構造体です。
type TodoRepository struct {
	DB *sql.DB
}

// NewTodoRepository は新しいTodoRepositoryインスタンスを作成します。
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{DB: db}
}

// FindAll はすべてのTodoタスクを作成日時の降順（新しいものが先頭）で取得します。
// created_at が同一の場合は id の降順で並べます。
func (r *TodoRepository) FindAll() ([]*models.Todo, error) {
	query := "SELECT id, title, completed, created_at, updated_at FROM todos ORDER BY created_at DESC, id DESC"

	rows, err := r.DB.Query(query)
	if err != nil {
		log.Printf("Failed to query todos: %v", err)
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			log.Printf("Failed to scan todo: %v", err)
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		todos = append(todos, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// Create は新しいTodoタスクをデータベースに挿入します。
// タイトルは呼び出し側で検証済みであることを前提とします。
// created_at と updated_at には同一の時刻を設定します。
func (r *TodoRepository) Create(title string) (*models.Todo, error) {
	now := time.Now().UTC()

	query := "INSERT INTO todos (title, completed, created_at, updated_at) VALUES (?, ?, ?, ?)"
	result, err := r.DB.Exec(query, title, false, now, now)
	if err != nil {
		log.Printf("Failed to insert todo: %v", err)
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	return &models.Todo{
		ID:        int(id),
		Title:     title,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FindByID は指定されたIDのTodoタスクをデータベースから取得します。
func (r *TodoRepository) FindByID(id int) (*models.Todo, error) {
	query := "SELECT id, title, completed, created_at, updated_at FROM todos WHERE id = ?"

	var t models.Todo
	err := r.DB.QueryRow(query, id).Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Failed to query todo by ID: %v", err)
		return nil, fmt.Errorf("could not query todo: %w", err)
	}

	return &t, nil
}

// Update は指定されたIDのTodoタスクを部分更新します。
// 入力で nil でないフィールドだけをSET句に積み、updated_at は常に再設定します。
// 対象行が存在しない場合は ErrTodoNotFound を返します。
func (r *TodoRepository) Update(id int, in *models.UpdateTodoInput) (*models.Todo, error) {
	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}

	if in.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *in.Title)
	}
	if in.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *in.Completed)
	}
	args = append(args, id)

	query := "UPDATE todos SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	result, err := r.DB.Exec(query, args...)
	if err != nil {
		log.Printf("Failed to update todo: %v", err)
		return nil, fmt.Errorf("could not update todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrTodoNotFound
	}

	// 更新後の行を取得して返す
	return r.FindByID(id)
}

// Toggle は指定されたIDのTodoタスクの完了状態を反転します。
// 読み取ってから書き戻すのではなく、1文の条件付きUPDATEで反転するため、
// 同一IDへの同時トグルが更新を失うことはありません。
func (r *TodoRepository) Toggle(id int) (*models.Todo, error) {
	query := "UPDATE todos SET completed = NOT completed, updated_at = ? WHERE id = ?"

	result, err := r.DB.Exec(query, time.Now().UTC(), id)
	if err != nil {
		log.Printf("Failed to toggle todo: %v", err)
		return nil, fmt.Errorf("could not toggle todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrTodoNotFound
	}

	return r.FindByID(id)
}

// Delete は指定されたIDのTodoタスクを削除します。
// 冪等です。対象行が存在しなくてもエラーにはなりません。
func (r *TodoRepository) Delete(id int) error {
	query := "DELETE FROM todos WHERE id = ?"

	if _, err := r.DB.Exec(query, id); err != nil {
		log.Printf("Failed to delete todo: %v", err)
		return fmt.Errorf("could not delete todo: %w", err)
	}

	return nil
}

// DeleteCompleted は完了済みのTodoタスクをすべて削除し、削除した行数を返します。
func (r *TodoRepository) DeleteCompleted() (int64, error) {
	query := "DELETE FROM todos WHERE completed = ?"

	result, err := r.DB.Exec(query, true)
	if err != nil {
		log.Printf("Failed to delete completed todos: %v", err)
		return 0, fmt.Errorf("could not delete completed todos: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get rows affected: %w", err)
	}

	return rowsAffected, nil
}
