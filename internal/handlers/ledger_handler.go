package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"familypoints/internal/ledger"
	"familypoints/internal/session"
)

// LedgerHandler exposes the point and reward operations
type LedgerHandler struct {
	store *ledger.Store
	log   zerolog.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(store *ledger.Store, log zerolog.Logger) *LedgerHandler {
	return &LedgerHandler{store: store, log: log}
}

type assignPointsRequest struct {
	BehaviorID string `json:"behavior_id"`
}

type rewardActionRequest struct {
	RewardID string `json:"reward_id"`
}

// AssignPoints applies a behavior to a kid
func (h *LedgerHandler) AssignPoints(w http.ResponseWriter, r *http.Request) {
	var req assignPointsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.store.AssignPoints(r.PathValue("id"), req.BehaviorID)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// GrantReward records a parent gift; the kid's balance is untouched
func (h *LedgerHandler) GrantReward(w http.ResponseWriter, r *http.Request) {
	var req rewardActionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.store.GrantReward(r.PathValue("id"), req.RewardID)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// RedeemReward lets a kid buy a reward with points. The parent may redeem
// on any kid's behalf; a kid viewer may only redeem for itself.
func (h *LedgerHandler) RedeemReward(w http.ResponseWriter, r *http.Request) {
	kidID := r.PathValue("id")

	claims := ViewerFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "no viewer selected"})
		return
	}
	if claims.Role != session.RoleParent && claims.Subject != kidID {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "kids can only redeem for themselves"})
		return
	}

	var req rewardActionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.store.RedeemReward(kidID, req.RewardID)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

type progressResponse struct {
	KidID    string  `json:"kid_id"`
	RewardID string  `json:"reward_id"`
	Progress float64 `json:"progress"`
}

// RewardProgress reports how close a kid is to affording a reward
func (h *LedgerHandler) RewardProgress(w http.ResponseWriter, r *http.Request) {
	kidID := r.PathValue("id")
	rewardID := r.PathValue("rewardID")

	progress, err := h.store.RewardProgress(kidID, rewardID)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{KidID: kidID, RewardID: rewardID, Progress: progress})
}
