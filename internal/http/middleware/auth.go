package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"comics-gateway/internal/http/response"
	"comics-gateway/internal/service"
	"comics-gateway/pkg/log"
)

// publicRoutes — маршруты, доступные без аутентификации.
// Сравнение — по префиксу пути без учёта регистра.
var publicRoutes = []string{
	"/auth/login",
	"/auth/register",
	"/health",
	"/swagger",
	"/openapi",
}

// TokenVerifier проверяет токен и возвращает вложенную в него личность.
type TokenVerifier interface {
	VerifyToken(raw string) (*service.Identity, error)
}

// Authenticate — гейт аутентификации. Терминален для запроса:
// либо пропускает дальше, либо отвечает 401 единым конвертом.
//
//  1. Путь из publicRoutes проходит без проверки учётных данных.
//  2. Иначе из Authorization извлекается Bearer-токен; заголовок без
//     префикса "Bearer " (без учёта регистра) считается отсутствующим.
//  3. Нет токена или токен не прошёл проверку -> 401; причины отказа
//     клиенту не различаются.
//  4. Валидный токен кладёт личность в контекст запроса: хендлеры читают
//     её через IdentityFrom и не разбирают токен повторно.
func Authenticate(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearer(r.Header.Get("Authorization"))
			if token == "" {
				log.From(r.Context()).Warn("auth_token_missing",
					slog.String("path", r.URL.Path),
				)
				response.Fail(w, http.StatusUnauthorized, "Unauthorized", "authentication token required")
				return
			}

			identity, err := verifier.VerifyToken(token)
			if err != nil {
				log.From(r.Context()).Warn("auth_token_invalid",
					slog.String("path", r.URL.Path),
				)
				response.Fail(w, http.StatusUnauthorized, "Unauthorized", "invalid authentication token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isPublicRoute(path string) bool {
	p := strings.ToLower(path)
	for _, route := range publicRoutes {
		if strings.HasPrefix(p, route) {
			return true
		}
	}
	return false
}

// extractBearer достаёт токен из заголовка Authorization.
// Возвращает "" для пустого заголовка и любой схемы, кроме Bearer.
func extractBearer(header string) string {
	const prefix = "Bearer "

	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}
