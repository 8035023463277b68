// Package main はRADIUSダイセクター（パッシブ観測サーバー）のエントリーポイント。
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oyaguma3/radius-dissector-poc/internal/config"
	"github.com/oyaguma3/radius-dissector-poc/internal/dict"
	"github.com/oyaguma3/radius-dissector-poc/internal/dissect"
	"github.com/oyaguma3/radius-dissector-poc/internal/export"
	"github.com/oyaguma3/radius-dissector-poc/internal/monitor"
	"github.com/oyaguma3/radius-dissector-poc/internal/server"
	"github.com/oyaguma3/radius-dissector-poc/internal/store"
)

func main() {
	// 1. 環境変数読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定読み込み失敗", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化（JSON形式、INFO以上）
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("app", "radius-dissector")
	slog.SetDefault(logger)

	slog.Info("radius-dissector起動開始",
		"listen_addr", cfg.ListenAddr,
	)

	// 3. 属性辞書生成。カスタムダイセクターはデコード開始前に登録する。
	d := dict.Base()
	d.RegisterDissector(dict.VendorCoSine, 5, dissect.CosineVPVC)

	// 4. Valkeyクライアント初期化（未設定なら機能無効）
	var sessions store.SessionStore
	if cfg.ValkeyEnabled() {
		valkeyClient, err := store.NewValkeyClient(cfg)
		if err != nil {
			slog.Error("Valkey接続失敗",
				"event_id", "VALKEY_CONN_ERR",
				"error", err,
			)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		sessions = store.NewSessionStore(valkeyClient)
		slog.Info("Valkey接続完了", "addr", cfg.ValkeyAddr())
	}

	// 5. エクスポートクライアント（未設定なら機能無効）
	var exporter export.Exporter
	if cfg.ExportEnabled() {
		exporter = export.NewClient(cfg)
		slog.Info("エクスポート有効", "url", cfg.ExportAPIURL)
	}

	// 6. データグラムハンドラ
	handler := monitor.NewHandler(d, cfg.RadiusSecret, cfg.LogMaskPassword, sessions, exporter)

	// 7. UDPサーバー起動（goroutine）
	srv := server.NewServer(cfg.ListenAddr, handler)
	go func() {
		slog.Info("UDP受信開始", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil {
			slog.Error("サーバーエラー", "error", err)
		}
	}()

	// 8. シグナル待機 → Graceful Shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	slog.Info("シグナル受信、シャットダウン開始", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("シャットダウンエラー", "error", err)
	}

	slog.Info("radius-dissector停止完了")
}
