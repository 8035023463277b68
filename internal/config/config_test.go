package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":11813")
	t.Setenv("RADIUS_SECRET", "testing123")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("REDIS_PASS", "secret")
	t.Setenv("EXPORT_API_URL", "http://collector:8080")
	t.Setenv("LOG_MASK_PASSWORD", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ListenAddr != ":11813" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":11813")
	}
	if cfg.RadiusSecret != "testing123" {
		t.Errorf("RadiusSecret = %q, want %q", cfg.RadiusSecret, "testing123")
	}
	if !cfg.ValkeyEnabled() {
		t.Error("ValkeyEnabled() = false, want true")
	}
	if cfg.ValkeyAddr() != "localhost:6379" {
		t.Errorf("ValkeyAddr() = %q, want %q", cfg.ValkeyAddr(), "localhost:6379")
	}
	if !cfg.ExportEnabled() {
		t.Error("ExportEnabled() = false, want true")
	}
	if cfg.LogMaskPassword != false {
		t.Errorf("LogMaskPassword = %v, want false", cfg.LogMaskPassword)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ListenAddr != ":1813" {
		t.Errorf("ListenAddr default = %q, want %q", cfg.ListenAddr, ":1813")
	}
	if cfg.RadiusSecret != "" {
		t.Errorf("RadiusSecret default = %q, want empty", cfg.RadiusSecret)
	}
	if cfg.ValkeyEnabled() {
		t.Error("ValkeyEnabled() = true without REDIS_HOST")
	}
	if cfg.ExportEnabled() {
		t.Error("ExportEnabled() = true without EXPORT_API_URL")
	}
	if cfg.LogMaskPassword != true {
		t.Errorf("LogMaskPassword default = %v, want true", cfg.LogMaskPassword)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "redis host without port",
			env:  map[string]string{"REDIS_HOST": "localhost"},
			want: "REDIS_PORT",
		},
		{
			name: "export url without scheme",
			env:  map[string]string{"EXPORT_API_URL": "collector:8080"},
			want: "EXPORT_API_URL",
		},
		{
			name: "blank listen addr",
			env:  map[string]string{"LISTEN_ADDR": "   "},
			want: "LISTEN_ADDR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() returned nil error, want validation failure")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
