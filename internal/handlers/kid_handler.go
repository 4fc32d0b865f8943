package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"familypoints/internal/ledger"
)

// KidHandler manages kid profiles
type KidHandler struct {
	store *ledger.Store
	log   zerolog.Logger
}

// NewKidHandler creates a new kid handler
func NewKidHandler(store *ledger.Store, log zerolog.Logger) *KidHandler {
	return &KidHandler{store: store, log: log}
}

type kidRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// List returns all kids in insertion order
func (h *KidHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Kids())
}

// Get returns a single kid with its full histories
func (h *KidHandler) Get(w http.ResponseWriter, r *http.Request) {
	kid, err := h.store.Kid(r.PathValue("id"))
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, kid)
}

// Create adds a new kid profile
func (h *KidHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req kidRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	kid, err := h.store.AddKid(req.Name, req.Avatar)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, kid)
}

// Update replaces a kid's name and avatar
func (h *KidHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req kidRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	kid, err := h.store.UpdateKid(r.PathValue("id"), req.Name, req.Avatar)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, kid)
}

// Delete removes a kid profile and all of its history
func (h *KidHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteKid(r.PathValue("id")); err != nil {
		respondWithError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
