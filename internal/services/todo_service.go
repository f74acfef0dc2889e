// Package services はビジネスロジックを提供します。
package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Stella2211/tanstack-start-todo/internal/models"
	"github.com/Stella2211/tanstack-start-todo/internal/repositories"
)

// ErrValidation は入力が不正な場合のエラーです。
// ストレージに触れる前に返され、errors.Is で NotFound やストレージ障害と区別できます。
var ErrValidation = errors.New("validation error")

// MaxTitleLength はタイトルの最大文字数（トリム後のコードポイント数）です。
const MaxTitleLength = 200

// TodoService はTodo関連のビジネスロジックを扱います。
// 各操作は「検証 → リポジトリへ委譲 → 結果の整形」のパイプラインです。
type TodoService struct {
	todoRepo *repositories.TodoRepository
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(todoRepo *repositories.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// validateTitle はタイトルをトリムし、1〜200文字であることを検証します。
func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return "", fmt.Errorf("%w: title must be at most %d characters", ErrValidation, MaxTitleLength)
	}
	return trimmed, nil
}

// validateID はIDが正の整数であることを検証します。
func validateID(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive integer", ErrValidation)
	}
	return nil
}

// ListTodos はすべてのTodoを作成日時の降順で取得します。
func (s *TodoService) ListTodos() ([]*models.Todo, error) {
	return s.todoRepo.FindAll()
}

// CreateTodo は新しいTodoを作成します。
func (s *TodoService) CreateTodo(in *models.CreateTodoInput) (*models.Todo, error) {
	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}
	return s.todoRepo.Create(title)
}

// ToggleTodo は指定IDのTodoの完了状態を反転します。
// 対象が存在しない場合は repositories.ErrTodoNotFound を返します。
func (s *TodoService) ToggleTodo(id int) (*models.Todo, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.todoRepo.Toggle(id)
}

// UpdateTodo は指定IDのTodoを部分更新します。
// 送信されたフィールドだけを適用します。どのフィールドも送信されていない場合は
// 検証エラーです。
func (s *TodoService) UpdateTodo(id int, in *models.UpdateTodoInput) (*models.Todo, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if in.Title == nil && in.Completed == nil {
		return nil, fmt.Errorf("%w: at least one of title or completed is required", ErrValidation)
	}
	if in.Title != nil {
		title, err := validateTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		in.Title = &title
	}
	return s.todoRepo.Update(id, in)
}

// DeleteTodo は指定IDのTodoを削除します。対象が存在しなくても成功します。
func (s *TodoService) DeleteTodo(id int) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.todoRepo.Delete(id)
}

// DeleteCompleted は完了済みのTodoをすべて削除し、削除件数を返します。
func (s *TodoService) DeleteCompleted() (int64, error) {
	return s.todoRepo.DeleteCompleted()
}
