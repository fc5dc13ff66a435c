package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
mode: release
addr: ":9090"
data_file: /var/lib/kintai/attendance.json
auth:
  password: secret
  jwt_secret: signing-key
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mode != "release" || cfg.Addr != ":9090" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DataFile != "/var/lib/kintai/attendance.json" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	// 未指定項目はデフォルト
	if cfg.MediaDir != "public/media" {
		t.Errorf("MediaDir = %q, want default", cfg.MediaDir)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("KINTAI_ADMIN_PASSWORD", "env-password")
	t.Setenv("KINTAI_JWT_SECRET", "env-secret")

	path := writeConfig(t, `
mode: dev
auth:
  password: yaml-password
  jwt_secret: yaml-secret
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.Password != "env-password" {
		t.Errorf("Password = %q, want env override", cfg.Auth.Password)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("JWTSecret = %q, want env override", cfg.Auth.JWTSecret)
	}
}

func TestLoad_RejectsMissingSecrets(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "パスワードなし", yaml: "auth:\n  jwt_secret: x\n"},
		{name: "署名鍵なし", yaml: "auth:\n  password: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KINTAI_ADMIN_PASSWORD", "")
			t.Setenv("KINTAI_JWT_SECRET", "")
			if _, err := Load(writeConfig(t, tt.yaml)); err == nil {
				t.Error("Load() error = nil, want failure")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want failure")
	}
}
