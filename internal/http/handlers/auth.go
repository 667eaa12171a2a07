package handlers

import (
	"net/http"

	"comics-gateway/internal/http/response"
	"comics-gateway/internal/service"
)

type registerRequest struct {
	Name           string `json:"name"`
	Identification string `json:"identification"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type validateTokenRequest struct {
	Token string `json:"token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	result, err := h.service.Register(r.Context(), in.Name, in.Identification, in.Email, in.Password)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusCreated, "registration successful", result)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	result, err := h.service.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "login successful", result)
}

// ValidateToken отвечает булевым результатом проверки, а не ошибкой:
// эндпоинт существует именно для опроса валидности токена.
func (h *Handlers) ValidateToken(w http.ResponseWriter, r *http.Request) {
	var in validateTokenRequest
	if err := decodeStrict(r, &in); err != nil {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	valid := h.service.ValidateToken(in.Token)
	response.OK(w, http.StatusOK, "token validated", valid)
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(r, &in); err != nil {
		response.WriteError(w, service.ErrInvalidArgument)
		return
	}

	result, err := h.service.RefreshToken(r.Context(), in.RefreshToken)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "token refreshed", result)
}
