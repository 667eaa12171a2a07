package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"comics-gateway/internal/models"
	"comics-gateway/internal/storage"
	"comics-gateway/pkg/log"

	"github.com/google/uuid"
)

// FavoritesResult — список закладок с общим количеством.
type FavoritesResult struct {
	Favorites  []models.ComicFavorite `json:"favorites"`
	TotalCount int                    `json:"totalCount"`
}

// AddFavorite добавляет комикс в закладки учётной записи.
// Дубликат (тот же comic_id у той же учётной записи) — ErrFavoriteExists.
func (s *Service) AddFavorite(ctx context.Context, accountID int64, favorite models.ComicFavorite) error {
	const op = "service.favorites.AddFavorite"

	lg := log.From(ctx)

	if favorite.ComicID <= 0 || strings.TrimSpace(favorite.Title) == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	favorite.ID = uuid.New()
	favorite.AccountID = accountID
	favorite.AddedAt = time.Now().UTC()

	if err := s.storage.SaveFavorite(ctx, &favorite); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return fmt.Errorf("%s: %w", op, ErrFavoriteExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("favorite_added",
		slog.String("op", op),
		slog.Int64("account_id", accountID),
		slog.Int("comic_id", favorite.ComicID),
	)

	return nil
}

// Favorites возвращает все закладки учётной записи.
func (s *Service) Favorites(ctx context.Context, accountID int64) (*FavoritesResult, error) {
	const op = "service.favorites.Favorites"

	favorites, err := s.storage.FavoritesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &FavoritesResult{
		Favorites:  favorites,
		TotalCount: len(favorites),
	}, nil
}

// RemoveFavorite убирает комикс из закладок; отсутствие — ErrFavoriteNotFound.
func (s *Service) RemoveFavorite(ctx context.Context, accountID int64, comicID int) error {
	const op = "service.favorites.RemoveFavorite"

	if comicID <= 0 {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeleteFavorite(ctx, accountID, comicID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrFavoriteNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IsFavorite сообщает, есть ли комикс в закладках.
func (s *Service) IsFavorite(ctx context.Context, accountID int64, comicID int) (bool, error) {
	const op = "service.favorites.IsFavorite"

	if comicID <= 0 {
		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	exists, err := s.storage.FavoriteExists(ctx, accountID, comicID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
