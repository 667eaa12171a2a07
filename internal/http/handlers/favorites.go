package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"comics-gateway/internal/http/middleware"
	"comics-gateway/internal/http/response"
	"comics-gateway/internal/models"
	"comics-gateway/internal/service"
)

type addFavoriteRequest struct {
	ComicID    int     `json:"comicId"`
	Title      string  `json:"title"`
	ImageURL   string  `json:"imageUrl"`
	Format     string  `json:"format"`
	OnSaleDate string  `json:"onSaleDate"`
	Author     string  `json:"author"`
	Price      float64 `json:"price"`
	Characters string  `json:"characters"`
}

func (h *Handlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.WriteError(w, service.ErrInvalidToken)
		return
	}

	var in addFavoriteRequest
	if err := decodeStrict(r, &in); err != nil {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	favorite := models.ComicFavorite{
		ComicID:    in.ComicID,
		Title:      in.Title,
		ImageURL:   in.ImageURL,
		Format:     in.Format,
		OnSaleDate: in.OnSaleDate,
		Author:     in.Author,
		Price:      in.Price,
		Characters: in.Characters,
	}

	if err := h.service.AddFavorite(r.Context(), identity.AccountID, favorite); err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusCreated, "comic added to favorites", nil)
}

func (h *Handlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.WriteError(w, service.ErrInvalidToken)
		return
	}

	result, err := h.service.Favorites(r.Context(), identity.AccountID)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "favorites retrieved", result)
}

func (h *Handlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.WriteError(w, service.ErrInvalidToken)
		return
	}

	comicID, err := strconv.Atoi(chi.URLParam(r, "comicId"))
	if err != nil || comicID <= 0 {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), identity.AccountID, comicID); err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "comic removed from favorites", nil)
}

func (h *Handlers) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.WriteError(w, service.ErrInvalidToken)
		return
	}

	comicID, err := strconv.Atoi(chi.URLParam(r, "comicId"))
	if err != nil || comicID <= 0 {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	exists, err := h.service.IsFavorite(r.Context(), identity.AccountID, comicID)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "favorite status retrieved", exists)
}
