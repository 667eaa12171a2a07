package handlers

import (
	"net/http"
	"time"

	"comics-gateway/internal/http/response"
)

const serviceVersion = "1.0.0"

type healthStatus struct {
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{
		Service:   "comics-gateway",
		Version:   serviceVersion,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
	}

	response.OK(w, http.StatusOK, "service healthy", status)
}

func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	response.OK(w, http.StatusOK, "pong", nil)
}
