// Package config はアプリケーション設定を提供します。
// デフォルト値 → YAMLファイル (任意) → 環境変数 の順に上書きされます。
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// DatabaseConfig はストレージの設定です。
// Driver が "sqlite3" の場合は Path のローカルファイルを使用し、
// "mysql" の場合は User/Pass/Host/Port/Name から接続文字列を組み立てます。
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	User   string `yaml:"user"`
	Pass   string `yaml:"pass"`
	Host   string `yaml:"host"`
	Port   string `yaml:"port"`
	Name   string `yaml:"name"`
}

// Default は組み込みのデフォルト設定を返します。
// ストレージ位置が未設定の場合は固定のローカルパスにフォールバックします。
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver: "sqlite3",
			Path:   "todos.db",
		},
	}
}

// Load は設定を読み込みます。path のYAMLファイルが存在すればデフォルトに重ね、
// 最後に環境変数で上書きします。ファイルが無いのはエラーではありません。
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not read config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv は設定済みの環境変数で設定値を上書きします。
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASS"); v != "" {
		c.Database.Pass = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.Database.Port = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Name = v
	}
}

// DSN はドライバーに応じた接続文字列を返します。
func (d *DatabaseConfig) DSN() string {
	if d.Driver == "mysql" {
		// 例: user:pass@tcp(db:3306)/dbname?parseTime=true
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", d.User, d.Pass, d.Host, d.Port, d.Name)
	}
	// sqliteはローカルファイル。WALで単文の耐久性を確保する。
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", d.Path)
}
