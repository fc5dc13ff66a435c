package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"kintai-backend/internal/platform/config"
)

const (
	SessionCookie = "kintai_session"
	sessionTTL    = 24 * time.Hour
)

var ErrAuthFailed = errors.New("authentication failed")

// Service: 単一パスワードのセッションゲート。
// 端末共用の打刻ページを守るだけなので、アカウント管理は持たない。
type Service struct {
	passwordHash string
	password     string
	secret       []byte
}

func NewService(cfg config.AuthConfig) *Service {
	return &Service{
		passwordHash: cfg.PasswordHash,
		password:     cfg.Password,
		secret:       []byte(cfg.JWTSecret),
	}
}

func (s *Service) Secret() []byte { return s.secret }

// Login: パスワード照合に成功したらセッショントークンを発行
func (s *Service) Login(password string) (string, error) {
	if password == "" {
		return "", ErrAuthFailed
	}

	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
			return "", ErrAuthFailed
		}
	} else if subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) != 1 {
		return "", ErrAuthFailed
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify: セッショントークンの検証
func (s *Service) Verify(tokenStr string) bool {
	if tokenStr == "" {
		return false
	}
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		// alg 固定（none攻撃とか回避）
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return err == nil && token != nil && token.Valid
}
