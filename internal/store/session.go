package store

import (
	"context"
	"fmt"

	"github.com/oyaguma3/radius-dissector-poc/internal/config"
)

// sessionStore はSessionStoreインターフェースの実装。
type sessionStore struct {
	vc *ValkeyClient
}

// NewSessionStore は新しいSessionStoreを生成する。
func NewSessionStore(vc *ValkeyClient) SessionStore {
	return &sessionStore{vc: vc}
}

// Exists はセッションの存在を確認する。
func (s *sessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	key := KeyPrefixSession + sessionID
	n, err := s.vc.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return n > 0, nil
}

// Get はセッション情報を取得する。
func (s *sessionStore) Get(ctx context.Context, sessionID string) (map[string]string, error) {
	key := KeyPrefixSession + sessionID
	m, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if len(m) == 0 {
		return nil, ErrSessionNotFound
	}
	return m, nil
}

// Upsert はセッションのフィールド更新とTTL延長を行う。
func (s *sessionStore) Upsert(ctx context.Context, sessionID string, fields map[string]any) error {
	key := KeyPrefixSession + sessionID
	pipe := s.vc.Client().Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, config.SessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}

// Delete はセッションを削除する。
func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	key := KeyPrefixSession + sessionID
	if err := s.vc.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}
