package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"familypoints/internal/ledger"
)

// CatalogHandler manages the behavior and reward catalogs
type CatalogHandler struct {
	store *ledger.Store
	log   zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *ledger.Store, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{store: store, log: log}
}

type behaviorRequest struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Icon   string `json:"icon"`
}

type rewardRequest struct {
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// ListBehaviors returns the behavior catalog
func (h *CatalogHandler) ListBehaviors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Behaviors())
}

// CreateBehavior adds a behavior to the catalog
func (h *CatalogHandler) CreateBehavior(w http.ResponseWriter, r *http.Request) {
	var req behaviorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	behavior, err := h.store.AddBehavior(req.Name, req.Points, req.Icon)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, behavior)
}

// DeleteBehavior removes a behavior from the catalog; history snapshots
// are unaffected
func (h *CatalogHandler) DeleteBehavior(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteBehavior(r.PathValue("id")); err != nil {
		respondWithError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRewards returns the reward catalog
func (h *CatalogHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Rewards())
}

// CreateReward adds a reward to the catalog
func (h *CatalogHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	var req rewardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reward, err := h.store.AddReward(req.Name, req.Cost, req.Icon, req.Description)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, reward)
}

// DeleteReward removes a reward from the catalog
func (h *CatalogHandler) DeleteReward(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteReward(r.PathValue("id")); err != nil {
		respondWithError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
