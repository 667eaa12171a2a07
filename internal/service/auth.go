package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"comics-gateway/internal/models"
	"comics-gateway/internal/storage"
	"comics-gateway/pkg/log"
	"comics-gateway/pkg/redact"
)

// Register регистрирует новую учётную запись и сразу выдаёт токен.
//
// Проверки занятости email/identification выполняются до записи как fast-path;
// авторитетный источник конфликта — уникальный constraint в БД, нарушение
// которого storage возвращает как ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, name, identification, email, password string) (*models.AuthResult, error) {
	const op = "service.auth.Register"

	lg := log.From(ctx)

	normEmail, err := normalizeEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	name = strings.TrimSpace(name)
	identification = strings.TrimSpace(identification)
	if name == "" || identification == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	taken, err := s.storage.ExistsByEmail(ctx, normEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}

	taken, err = s.storage.ExistsByIdentification(ctx, identification)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return nil, fmt.Errorf("%s: %w", op, ErrIdentificationTaken)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	account := &models.Account{
		Name:           name,
		Identification: identification,
		Email:          normEmail,
		PasswordHash:   hash,
		LastLogin:      time.Now().UTC(),
		Active:         true,
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Гонка с конкурентной регистрацией: constraint сработал после
			// fast-path проверок. Какое именно поле занято, БД не сообщает —
			// отвечаем конфликтом по email как наиболее вероятным.
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("account_registered",
		slog.String("op", op),
		slog.Int64("account_id", account.ID),
		slog.String("email", redact.Email(account.Email)),
	)

	return s.tokenResponse(ctx, account)
}

// Login выполняет вход по email+паролю.
// Неизвестный email, неверный пароль и деактивированная учётная запись
// неразличимы для вызывающего — всегда ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	const op = "service.auth.Login"

	lg := log.From(ctx)

	normEmail, err := normalizeEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	account, err := s.storage.AccountByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(account.PasswordHash, password) {
		lg.Warn("login_wrong_password",
			slog.String("op", op),
			slog.String("email", redact.Email(normEmail)),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if !account.Active {
		lg.Warn("login_inactive_account",
			slog.String("op", op),
			slog.Int64("account_id", account.ID),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	now := time.Now().UTC()
	if err := s.storage.UpdateLastLogin(ctx, account.ID, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	account.LastLogin = now

	return s.tokenResponse(ctx, account)
}

// RefreshToken — обмен refresh-токена не поддерживается: токен выдаётся
// при входе, но нигде не хранится и не может быть предъявлен.
func (s *Service) RefreshToken(_ context.Context, _ string) (*models.AuthResult, error) {
	const op = "service.auth.RefreshToken"

	return nil, fmt.Errorf("%s: %w", op, ErrNotImplemented)
}

// tokenResponse упаковывает токен, refresh-токен, срок действия
// и публичную проекцию учётной записи.
func (s *Service) tokenResponse(ctx context.Context, account *models.Account) (*models.AuthResult, error) {
	const op = "service.auth.tokenResponse"

	now := time.Now().UTC()

	token, expiresAt, err := s.issueToken(ctx, account, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AuthResult{
		Token:        token,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		User:         account.Info(),
	}, nil
}

// normalizeEmail проверяет базовый формат email и приводит его к нижнему регистру.
func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ErrInvalidArgument
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidArgument
	}

	return strings.ToLower(email), nil
}
