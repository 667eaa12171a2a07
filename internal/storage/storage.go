package storage

import (
	"context"
	"errors"
	"time"

	"comics-gateway/internal/models"
)

var (
	// ErrNotFound — запись не найдена (учётная запись/закладка).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/identification/закладка).
	ErrAlreadyExists = errors.New("already exists")
)

// AccountStorage выполняет операции над учётными записями.
type AccountStorage interface {
	// SaveAccount создаёт учётную запись и заполняет её ID.
	// Уникальность email/identification гарантирует БД; нарушение
	// возвращается как ErrAlreadyExists.
	SaveAccount(ctx context.Context, account *models.Account) error
	// AccountByEmail находит учётную запись по email независимо от активности.
	AccountByEmail(ctx context.Context, email string) (*models.Account, error)
	// ExistsByEmail проверяет занятость email среди всех учётных записей.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByIdentification проверяет занятость идентификатора.
	ExistsByIdentification(ctx context.Context, identification string) (bool, error)
	// UpdateLastLogin фиксирует момент последнего входа.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// FavoriteStorage выполняет операции над закладками на комиксы.
type FavoriteStorage interface {
	// SaveFavorite сохраняет закладку; дубль (account_id, comic_id) — ErrAlreadyExists.
	SaveFavorite(ctx context.Context, favorite *models.ComicFavorite) error
	// FavoritesByAccount возвращает все закладки учётной записи,
	// отсортированные по времени добавления (новые первыми).
	FavoritesByAccount(ctx context.Context, accountID int64) ([]models.ComicFavorite, error)
	// DeleteFavorite удаляет закладку; отсутствие — ErrNotFound.
	DeleteFavorite(ctx context.Context, accountID int64, comicID int) error
	// FavoriteExists проверяет наличие закладки.
	FavoriteExists(ctx context.Context, accountID int64, comicID int) (bool, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	AccountStorage
	FavoriteStorage
	Close()
}
