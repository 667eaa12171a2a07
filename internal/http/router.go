package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"comics-gateway/internal/http/handlers"
	"comics-gateway/internal/http/middleware"
	"comics-gateway/internal/marvel"
	"comics-gateway/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, catalog *marvel.Client, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Authenticate(svc),    // проверяем Bearer токен, кладём identity в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc, catalog)

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/validate-token", h.ValidateToken)
	r.Post("/auth/refresh", h.Refresh)

	// marvel catalog
	r.Get("/marvel/characters", h.Characters)
	r.Get("/marvel/characters/{id}", h.CharacterByID)
	r.Get("/marvel/comics", h.Comics)
	r.Get("/marvel/comics/{id}", h.ComicByID)

	// favorites
	r.Post("/favorites/comics", h.AddFavorite)
	r.Get("/favorites/comics", h.ListFavorites)
	r.Delete("/favorites/comics/{comicId}", h.RemoveFavorite)
	r.Get("/favorites/comics/{comicId}/check", h.CheckFavorite)

	// health
	r.Get("/health", h.Health)
	r.Get("/health/ping", h.Ping)
}
