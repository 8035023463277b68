package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
	ValkeyMaxRetries     = 3
	ValkeyMinRetryDelay  = 100 * time.Millisecond
	ValkeyMaxRetryDelay  = 1 * time.Second
)

// セッション管理
const (
	SessionTTL = 24 * time.Hour
)

// エクスポートクライアント設定
const (
	ExportRequestTimeout = 5 * time.Second

	CBName             = "export-api"
	CBMaxRequests      = 1
	CBInterval         = 60 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// サーバー設定
const (
	// MaxDatagramSize はRADIUSパケットの最大長（RFC 2865）
	MaxDatagramSize = 4096

	ShutdownTimeout = 5 * time.Second
)
