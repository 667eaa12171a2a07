// service содержит бизнес-логику шлюза: регистрацию/аутентификацию
// учётных записей, выпуск/проверку токенов и работу с закладками
// через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются как sentinel-значения и далее маппятся HTTP-слоем
//     на статусы (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"comics-gateway/internal/config"
	"comics-gateway/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные или отсутствующие входные данные.
	// HTTP-слой: 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCredentials — пара email/пароль неверна, пользователь не найден
	// или учётная запись деактивирована. Причины намеренно не различаются.
	// HTTP-слой: 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен некорректен по формату/подписи/сроку/издателю.
	// Причина отказа наружу не сообщается. HTTP-слой: 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmailTaken — email уже занят другой учётной записью.
	// HTTP-слой: 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrIdentificationTaken — идентификатор уже занят.
	// HTTP-слой: 409.
	ErrIdentificationTaken = errors.New("identification already taken")

	// ErrFavoriteExists — комикс уже в закладках учётной записи.
	// HTTP-слой: 409.
	ErrFavoriteExists = errors.New("favorite already exists")

	// ErrFavoriteNotFound — закладки нет. HTTP-слой: 404.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrNotImplemented — операция заявлена, но не поддерживается
	// (обмен refresh-токена). HTTP-слой: 501.
	ErrNotImplemented = errors.New("not implemented")
)

// Service описывает бизнес-логику шлюза.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}
