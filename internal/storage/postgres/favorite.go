package postgres

import (
	"context"
	"errors"
	"fmt"

	"comics-gateway/internal/models"
	"comics-gateway/internal/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// SaveFavorite сохраняет закладку; дубль (account_id, comic_id) — ErrAlreadyExists.
func (s *Storage) SaveFavorite(ctx context.Context, favorite *models.ComicFavorite) error {
	const op = "storage.postgres.SaveFavorite"

	query := `
		INSERT INTO comic_favorites(
			id, account_id, comic_id, title, image_url, format,
			on_sale_date, author, price, characters, added_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := s.db.Exec(ctx, query,
		favorite.ID,
		favorite.AccountID,
		favorite.ComicID,
		favorite.Title,
		favorite.ImageURL,
		favorite.Format,
		favorite.OnSaleDate,
		favorite.Author,
		favorite.Price,
		favorite.Characters,
		favorite.AddedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// FavoritesByAccount возвращает все закладки учётной записи, новые первыми.
func (s *Storage) FavoritesByAccount(ctx context.Context, accountID int64) ([]models.ComicFavorite, error) {
	const op = "storage.postgres.FavoritesByAccount"

	query := `
		SELECT id, account_id, comic_id, title, image_url, format,
		       on_sale_date, author, price, characters, added_at
		FROM comic_favorites
		WHERE account_id = $1
		ORDER BY added_at DESC
	`

	rows, err := s.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var favorites []models.ComicFavorite
	for rows.Next() {
		var f models.ComicFavorite
		if err := rows.Scan(
			&f.ID,
			&f.AccountID,
			&f.ComicID,
			&f.Title,
			&f.ImageURL,
			&f.Format,
			&f.OnSaleDate,
			&f.Author,
			&f.Price,
			&f.Characters,
			&f.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return favorites, nil
}

// DeleteFavorite удаляет закладку; отсутствие — ErrNotFound.
func (s *Storage) DeleteFavorite(ctx context.Context, accountID int64, comicID int) error {
	const op = "storage.postgres.DeleteFavorite"

	query := `DELETE FROM comic_favorites WHERE account_id = $1 AND comic_id = $2`

	tag, err := s.db.Exec(ctx, query, accountID, comicID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// FavoriteExists проверяет наличие закладки.
func (s *Storage) FavoriteExists(ctx context.Context, accountID int64, comicID int) (bool, error) {
	const op = "storage.postgres.FavoriteExists"

	query := `SELECT EXISTS(SELECT 1 FROM comic_favorites WHERE account_id = $1 AND comic_id = $2)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, accountID, comicID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
