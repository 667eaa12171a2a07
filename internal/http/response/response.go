// response стандартизирует ответы HTTP-слоя шлюза.
// Все эндпойнты отвечают единым конвертом
// {success, message, data, error, timestamp}; ошибки доменного слоя
// переводятся в HTTP-статусы здесь и только здесь, без утечки внутренних
// деталей за пределы короткого человекочитаемого сообщения.
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"comics-gateway/internal/marvel"
	"comics-gateway/internal/service"
)

// Body — единый конверт ответа.
type Body struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Error     *string   `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// OK пишет успешный ответ с данными.
func OK(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Body{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// Fail пишет ответ об ошибке с явным статусом и меткой.
func Fail(w http.ResponseWriter, status int, label, message string) {
	write(w, status, Body{
		Success:   false,
		Message:   message,
		Error:     &label,
		Timestamp: time.Now().UTC(),
	})
}

// WriteError конвертирует доменную ошибку в HTTP-статус и единый конверт.
// nil — программная ошибка вызова: отвечаем 500, чтобы не замаскировать баг
// ответом «200 OK».
func WriteError(w http.ResponseWriter, err error) {
	status, label, message := mapError(err)
	Fail(w, status, label, message)
}

// mapError — базовый маппинг доменных sentinel-ошибок на HTTP.
// Сообщения фиксированы: текст внутренних ошибок наружу не уходит.
func mapError(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "Internal Server Error", "internal error"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "Bad Request", "invalid argument"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Unauthorized", "invalid email or password"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "Unauthorized", "invalid token"
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, "Conflict", "email already exists"
	case errors.Is(err, service.ErrIdentificationTaken):
		return http.StatusConflict, "Conflict", "identification already exists"
	case errors.Is(err, service.ErrFavoriteExists):
		return http.StatusConflict, "Conflict", "comic is already in favorites"
	case errors.Is(err, service.ErrFavoriteNotFound):
		return http.StatusNotFound, "Not Found", "favorite not found"
	case errors.Is(err, service.ErrNotImplemented):
		return http.StatusNotImplemented, "Not Implemented", "refresh token exchange is not supported"
	case errors.Is(err, marvel.ErrUnavailable):
		return http.StatusBadGateway, "Bad Gateway", "catalog is unavailable"
	case errors.Is(err, marvel.ErrProtocol):
		return http.StatusBadGateway, "Bad Gateway", "catalog returned a malformed response"
	default:
		return http.StatusInternalServerError, "Internal Server Error", "internal error"
	}
}

func write(w http.ResponseWriter, status int, body Body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
