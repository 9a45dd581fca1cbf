package delivery

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidPassword = errors.New("invalid password")

// AuthService выдаёт и проверяет админские JWT (HS256).
type AuthService struct {
	secret   []byte
	password string
	ttl      time.Duration
}

func NewAuthService(secret, password string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{secret: []byte(secret), password: password, ttl: ttl}
}

func (s *AuthService) Enabled() bool {
	return s.password != "" && len(s.secret) > 0
}

func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if !s.Enabled() || subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidPassword
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return false, err
	}

	sub, _ := token.Claims.GetSubject()
	return token.Valid && sub == "admin", nil
}
