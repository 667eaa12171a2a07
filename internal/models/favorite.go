package models

import (
	"time"

	"github.com/google/uuid"
)

// ComicFavorite — закладка пользователя на комикс из каталога.
// Снимок данных комикса хранится целиком: апстрим не обязан отдавать
// тот же комикс повторно, а закладка должна отображаться без похода в каталог.
type ComicFavorite struct {
	ID         uuid.UUID `json:"-"`
	AccountID  int64     `json:"-"`
	ComicID    int       `json:"comicId"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"imageUrl"`
	Format     string    `json:"format"`
	OnSaleDate string    `json:"onSaleDate"`
	Author     string    `json:"author"`
	Price      float64   `json:"price"`
	Characters string    `json:"characters"`
	AddedAt    time.Time `json:"addedAt"`
}
