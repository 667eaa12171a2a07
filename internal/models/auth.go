package models

import "time"

// AuthResult — результат регистрации или входа.
//
// Описание:
//   - Token — подписанный JWT для авторизации запросов;
//   - RefreshToken — случайный секрет; выдаётся, но обмен не поддерживается
//     (см. service.ErrNotImplemented);
//   - ExpiresAt — момент истечения действия токена (UTC).
type AuthResult struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresAt    time.Time   `json:"expiresAt"`
	User         AccountInfo `json:"user"`
}
