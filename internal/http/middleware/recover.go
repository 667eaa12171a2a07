package middleware

import (
	"net/http"
	"runtime/debug"

	"comics-gateway/internal/http/response"
	logctx "comics-gateway/pkg/log"
)

// Recover перехватывает паники обработчиков и отвечает единым конвертом 500,
// не роняя процесс.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logctx.From(r.Context()).Error("panic recovered",
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					response.Fail(w, http.StatusInternalServerError,
						"Internal Server Error", "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
