package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"familypoints/internal/repository"
)

// WelcomeHandler exposes the one persisted product flag: whether the
// welcome screen has been shown before
type WelcomeHandler struct {
	settings *repository.SettingsRepository
	log      zerolog.Logger
}

// NewWelcomeHandler creates a new welcome handler
func NewWelcomeHandler(settings *repository.SettingsRepository, log zerolog.Logger) *WelcomeHandler {
	return &WelcomeHandler{settings: settings, log: log}
}

type welcomeResponse struct {
	Seen bool `json:"seen"`
}

// Get reports whether the welcome screen has been shown
func (h *WelcomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	seen, err := h.settings.WelcomeSeen()
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, welcomeResponse{Seen: seen})
}

// Put records whether the welcome screen has been shown
func (h *WelcomeHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req welcomeResponse
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.settings.SetWelcomeSeen(req.Seen); err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, welcomeResponse{Seen: req.Seen})
}
