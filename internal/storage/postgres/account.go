package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comics-gateway/internal/models"
	"comics-gateway/internal/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SaveAccount создаёт учётную запись и заполняет account.ID.
// Уникальность email/identification обеспечивают constraints из миграции;
// их нарушение приходит сюда как UniqueViolation.
func (s *Storage) SaveAccount(ctx context.Context, account *models.Account) error {
	const op = "storage.postgres.SaveAccount"

	query := `
		INSERT INTO accounts(name, identification, email, password_hash, last_login, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query,
		account.Name,
		account.Identification,
		account.Email,
		account.PasswordHash,
		account.LastLogin,
		account.Active,
	).Scan(&account.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AccountByEmail находит учётную запись по email независимо от активности.
func (s *Storage) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	const op = "storage.postgres.AccountByEmail"

	query := `
		SELECT id, name, identification, email, password_hash, last_login, active
		FROM accounts
		WHERE email = $1
	`

	var account models.Account
	err := s.db.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Identification,
		&account.Email,
		&account.PasswordHash,
		&account.LastLogin,
		&account.Active,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &account, nil
}

// ExistsByEmail проверяет занятость email среди всех учётных записей.
func (s *Storage) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const op = "storage.postgres.ExistsByEmail"

	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// ExistsByIdentification проверяет занятость идентификатора.
func (s *Storage) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	const op = "storage.postgres.ExistsByIdentification"

	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE identification = $1)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, identification).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// UpdateLastLogin фиксирует момент последнего входа.
func (s *Storage) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	const op = "storage.postgres.UpdateLastLogin"

	query := `UPDATE accounts SET last_login = $2 WHERE id = $1`

	tag, err := s.db.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
