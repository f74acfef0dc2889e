// Package modelsはTodoを定義します。
package models

import (
	"time"
)

// Todo は todos テーブルの1行を表します。
type Todo struct {
	ID        int       `json:"id"`         // 主キー (自動採番)
	Title     string    `json:"title"`      // タスクのタイトル
	Completed bool      `json:"completed"`  // 完了状態
	CreatedAt time.Time `json:"created_at"` // 作成日時 (挿入時に一度だけ設定)
	UpdatedAt time.Time `json:"updated_at"` // 更新日時 (すべての更新で再設定)
}

// CreateTodoInput は作成リクエストのボディです。
// binding:"required" により、titleが欠落または空文字列の場合は
// c.ShouldBindJSON() がエラーを返します。
type CreateTodoInput struct {
	Title string `json:"title" binding:"required"`
}

// UpdateTodoInput は部分更新リクエストのボディです。
// 送信されなかったフィールドは nil のままとなり、更新対象から除外されます。
type UpdateTodoInput struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
