package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// RADIUS設定
	ListenAddr   string `envconfig:"LISTEN_ADDR" default:":1813"`
	RadiusSecret string `envconfig:"RADIUS_SECRET"`

	// Valkey接続設定（未設定時はセッション収集を無効化）
	RedisHost string `envconfig:"REDIS_HOST"`
	RedisPort string `envconfig:"REDIS_PORT"`
	RedisPass string `envconfig:"REDIS_PASS"`

	// パケットレコードのエクスポート先（未設定時はエクスポート無効）
	ExportAPIURL string `envconfig:"EXPORT_API_URL"`

	// ログ設定
	LogMaskPassword bool `envconfig:"LOG_MASK_PASSWORD" default:"true"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ValkeyEnabled はセッション収集が有効かどうかを返す
func (c *Config) ValkeyEnabled() bool {
	return c.RedisHost != ""
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// ExportEnabled はパケットレコードのエクスポートが有効かどうかを返す
func (c *Config) ExportEnabled() bool {
	return c.ExportAPIURL != ""
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("LISTEN_ADDR must not be empty")
	}
	if c.RedisHost != "" && c.RedisPort == "" {
		return fmt.Errorf("REDIS_PORT must be set when REDIS_HOST is set")
	}
	if c.ExportAPIURL != "" &&
		!strings.HasPrefix(c.ExportAPIURL, "http://") && !strings.HasPrefix(c.ExportAPIURL, "https://") {
		return fmt.Errorf("EXPORT_API_URL must start with http:// or https://")
	}
	return nil
}
