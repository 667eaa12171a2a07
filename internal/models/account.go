package models

import "time"

// Account — учётная запись пользователя шлюза.
// Email и Identification глобально уникальны (constraint в БД).
// Учётные записи не удаляются физически — только деактивируются.
type Account struct {
	ID             int64
	Name           string
	Identification string
	Email          string
	PasswordHash   string
	LastLogin      time.Time
	Active         bool
}

// AccountInfo — публичная проекция учётной записи.
// PasswordHash наружу не отдаётся никогда.
type AccountInfo struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Identification string    `json:"identification"`
	Email          string    `json:"email"`
	LastLogin      time.Time `json:"last_login"`
}

// Info возвращает публичную проекцию учётной записи.
func (a *Account) Info() AccountInfo {
	return AccountInfo{
		ID:             a.ID,
		Name:           a.Name,
		Identification: a.Identification,
		Email:          a.Email,
		LastLogin:      a.LastLogin,
	}
}
