package store

import "context"

// SessionStore は観測したAccountingセッションへのアクセスを定義する
type SessionStore interface {
	// Exists はセッションの存在を確認する
	Exists(ctx context.Context, sessionID string) (bool, error)
	// Get はセッション情報を取得する
	Get(ctx context.Context, sessionID string) (map[string]string, error)
	// Upsert はStart/Interim受信時のセッション更新を行う（TTL更新込み）
	Upsert(ctx context.Context, sessionID string, fields map[string]any) error
	// Delete はStop受信時にセッションを削除する
	Delete(ctx context.Context, sessionID string) error
}
