package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"familypoints/internal/ledger"
)

// ReportHandler exposes the derived read-only views
type ReportHandler struct {
	store *ledger.Store
	log   zerolog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(store *ledger.Store, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{store: store, log: log}
}

// Leaderboard returns kids ranked by descending point balance
func (h *ReportHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Leaderboard())
}

// Report returns the windowed earned/lost aggregation.
// The window is selected with ?range=all|week|month.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	rng, err := ledger.ParseRange(r.URL.Query().Get("range"))
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.store.Report(rng))
}
