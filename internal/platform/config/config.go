package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"

	envAdminPassword = "KINTAI_ADMIN_PASSWORD"
	envJWTSecret     = "KINTAI_JWT_SECRET"
	envAddr          = "KINTAI_ADDR"
)

type AuthConfig struct {
	// bcryptハッシュを推奨。未設定なら password（平文）と比較する
	PasswordHash string `yaml:"password_hash"`
	Password     string `yaml:"password"`
	JWTSecret    string `yaml:"jwt_secret"`
}

type Config struct {
	Version  string     `yaml:"version"`
	Mode     string     `yaml:"mode"` // dev | release
	Addr     string     `yaml:"addr"`
	DataFile string     `yaml:"data_file"`
	MediaDir string     `yaml:"media_dir"`
	Auth     AuthConfig `yaml:"auth"`
}

func Load(path string) (*Config, error) {
	// .env は存在すれば読む（無くてもエラーにしない）
	_ = godotenv.Load()

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
	}

	// 環境変数での上書き（秘匿値はyamlに書かない運用を許す）
	if v := os.Getenv(envAdminPassword); v != "" {
		cfg.Auth.Password = v
	}
	if v := os.Getenv(envJWTSecret); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv(envAddr); v != "" {
		cfg.Addr = v
	}

	applyDefaults(&cfg)

	if cfg.Auth.PasswordHash == "" && cfg.Auth.Password == "" {
		return nil, fmt.Errorf("管理パスワードが未設定です (auth.password_hash / %s)", envAdminPassword)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("セッション署名鍵が未設定です (auth.jwt_secret / %s)", envJWTSecret)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = "dev"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "data/attendance.json"
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = "public/media"
	}
}
