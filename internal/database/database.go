// Package database はデータベース接続の初期化を提供します。
package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Stella2211/tanstack-start-todo/internal/config"
)

// schemaSQLite / schemaMySQL は todos テーブルのDDLです。
// タイムスタンプはアプリケーション側で設定するため、カラムデフォルトは持ちません。
const schemaSQLite = `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);`

const schemaMySQL = `
	CREATE TABLE IF NOT EXISTS todos (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL
	);`

// InitDB はデータベース接続を初期化します。
// 接続はプロセス起動時に一度だけ開かれ、すべてのハンドラーで共有されます。
func InitDB(cfg *config.Config) *sql.DB {
	db, err := Open(&cfg.Database)
	if err != nil {
		log.Fatalf("Fatal: Failed to open database connection: %v", err)
	}
	log.Printf("Successfully connected to %s database!", cfg.Database.Driver)
	return db
}

// Open はドライバーに応じて接続を開き、疎通確認とスキーマ作成まで行います。
func Open(dbCfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(dbCfg.Driver, dbCfg.DSN())
	if err != nil {
		return nil, err
	}

	if dbCfg.Driver == "mysql" {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// sqliteは単一ファイルなので書き込み接続を1本に絞る
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := ensureSchema(db, dbCfg.Driver); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// ensureSchema は todos テーブルを作成します。
func ensureSchema(db *sql.DB, driver string) error {
	schema := schemaSQLite
	if driver == "mysql" {
		schema = schemaMySQL
	}
	_, err := db.Exec(schema)
	return err
}
