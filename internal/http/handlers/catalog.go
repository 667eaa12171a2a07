package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"comics-gateway/internal/http/response"
	"comics-gateway/internal/marvel"
	"comics-gateway/internal/service"
)

func (h *Handlers) Characters(w http.ResponseWriter, r *http.Request) {
	filter, err := characterFilterFromQuery(r)
	if err != nil {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	result, err := h.catalog.Characters(r.Context(), filter)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "characters retrieved", result)
}

func (h *Handlers) CharacterByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	result, err := h.catalog.CharacterByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "character retrieved", result)
}

func (h *Handlers) Comics(w http.ResponseWriter, r *http.Request) {
	filter, err := comicFilterFromQuery(r)
	if err != nil {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	result, err := h.catalog.Comics(r.Context(), filter)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "comics retrieved", result)
}

func (h *Handlers) ComicByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	result, err := h.catalog.ComicByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "comic retrieved", result)
}

func characterFilterFromQuery(r *http.Request) (marvel.CharacterFilter, error) {
	q := r.URL.Query()

	var f marvel.CharacterFilter
	f.Name = q.Get("name")
	f.NameStartsWith = q.Get("nameStartsWith")
	f.OrderBy = q.Get("orderBy")

	var err error
	if f.ModifiedSince, err = optionalDate(q.Get("modifiedSince")); err != nil {
		return marvel.CharacterFilter{}, err
	}
	if f.Limit, err = optionalInt(q.Get("limit")); err != nil {
		return marvel.CharacterFilter{}, err
	}
	if f.Offset, err = optionalInt(q.Get("offset")); err != nil {
		return marvel.CharacterFilter{}, err
	}

	return f, nil
}

func comicFilterFromQuery(r *http.Request) (marvel.ComicFilter, error) {
	q := r.URL.Query()

	var f marvel.ComicFilter
	f.Title = q.Get("title")
	f.TitleStartsWith = q.Get("titleStartsWith")
	f.ISBN = q.Get("isbn")
	f.UPC = q.Get("upc")
	f.DiamondCode = q.Get("diamondCode")
	f.DigitalID = q.Get("digitalId")
	f.Format = q.Get("format")
	f.FormatType = q.Get("formatType")
	f.DateDescriptor = q.Get("dateDescriptor")
	f.OrderBy = q.Get("orderBy")

	var err error
	if f.ModifiedSince, err = optionalDate(q.Get("modifiedSince")); err != nil {
		return marvel.ComicFilter{}, err
	}
	if f.IssueNumber, err = optionalInt(q.Get("issueNumber")); err != nil {
		return marvel.ComicFilter{}, err
	}
	if f.NoVariants, err = optionalBool(q.Get("noVariants")); err != nil {
		return marvel.ComicFilter{}, err
	}
	if f.DateRange, err = optionalDate(q.Get("dateRange")); err != nil {
		return marvel.ComicFilter{}, err
	}
	if f.StartYear, err = optionalInt(q.Get("startYear")); err != nil {
		return marvel.ComicFilter{}, err
	}
	if f.EndYear, err = optionalInt(q.Get("endYear")); err != nil {
		return marvel.ComicFilter{}, err
	}
	if f.Limit, err = optionalInt(q.Get("limit")); err != nil {
		return marvel.ComicFilter{}, err
	}
	if f.Offset, err = optionalInt(q.Get("offset")); err != nil {
		return marvel.ComicFilter{}, err
	}

	return f, nil
}

func optionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalBool(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
