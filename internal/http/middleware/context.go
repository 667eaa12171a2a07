package middleware

import (
	"context"

	"comics-gateway/internal/service"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyIdentity
)

// RequestIDFrom возвращает request id запроса, если он есть в контексте.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// IdentityFrom возвращает проверенную личность запроса, положенную гейтом.
// Для публичных маршрутов личности в контексте нет.
func IdentityFrom(ctx context.Context) (*service.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(*service.Identity)
	return id, ok && id != nil
}
