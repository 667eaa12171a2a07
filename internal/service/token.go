package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"comics-gateway/internal/models"
	"comics-gateway/pkg/log"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims — полезная нагрузка токена: субъект (id учётной записи)
// плюс публичные атрибуты, чтобы хендлерам не ходить в БД.
type accessClaims struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Identification string `json:"identification"`
	jwt.RegisteredClaims
}

// Identity — проверенная личность запроса, извлечённая из токена.
// Кладётся в контекст запроса middleware-гейтом.
type Identity struct {
	AccountID      int64
	Name           string
	Email          string
	Identification string
}

// issueToken выпускает подписанный токен для учётной записи.
func (s *Service) issueToken(ctx context.Context, account *models.Account, now time.Time) (string, time.Time, error) {
	const op = "service.token.issueToken"

	lg := log.From(ctx)

	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := accessClaims{
		Name:           account.Name,
		Email:          account.Email,
		Identification: account.Identification,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings(s.cfg.Audience),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		lg.Error("token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt, nil
}

// VerifyToken проверяет подпись, издателя, аудиторию и срок действия токена.
// Leeway нулевой: просроченный хотя бы на секунду токен недействителен.
// Любой отказ приходит как ErrInvalidToken — причины наружу не различаются.
func (s *Service) VerifyToken(raw string) (*Identity, error) {
	const op = "service.token.VerifyToken"

	token, err := jwt.ParseWithClaims(raw, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience...),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &Identity{
		AccountID:      id,
		Name:           claims.Name,
		Email:          claims.Email,
		Identification: claims.Identification,
	}, nil
}

// ValidateToken сводит результат проверки к булеву значению.
// Все причины отказа намеренно неразличимы для вызывающего.
func (s *Service) ValidateToken(raw string) bool {
	_, err := s.VerifyToken(raw)
	return err == nil
}

// generateRefreshToken создаёт непрозрачный refresh-токен:
// 32 криптослучайных байта в base64. Токен выдаётся, но нигде не сохраняется —
// обмен не поддерживается (см. RefreshToken).
func generateRefreshToken() (string, error) {
	const op = "service.token.generateRefreshToken"

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return base64.StdEncoding.EncodeToString(b), nil
}
