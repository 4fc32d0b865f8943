package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"familypoints/internal/ledger"
	"familypoints/internal/suggest"
)

// SuggestHandler proxies the AI suggestion service. Empty result lists are
// a normal outcome, not an error.
type SuggestHandler struct {
	store  *ledger.Store
	client *suggest.Client
	log    zerolog.Logger
}

// NewSuggestHandler creates a new suggestion handler
func NewSuggestHandler(store *ledger.Store, client *suggest.Client, log zerolog.Logger) *SuggestHandler {
	return &SuggestHandler{store: store, client: client, log: log}
}

// Behaviors suggests behaviors for ?category=good|chore (default good)
func (h *SuggestHandler) Behaviors(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "chore" {
		category = "good"
	}

	suggestions := h.client.BehaviorSuggestions(r.Context(), category)
	if suggestions == nil {
		suggestions = []suggest.BehaviorSuggestion{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

// Rewards suggests rewards personalised with the family's kid names
func (h *SuggestHandler) Rewards(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, kid := range h.store.Kids() {
		names = append(names, kid.Name)
	}

	suggestions := h.client.RewardSuggestions(r.Context(), strings.Join(names, ", "))
	if suggestions == nil {
		suggestions = []suggest.RewardSuggestion{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

// Icons suggests emoji for ?label=
func (h *SuggestHandler) Icons(w http.ResponseWriter, r *http.Request) {
	icons := h.client.IconSuggestions(r.Context(), r.URL.Query().Get("label"))
	if icons == nil {
		icons = []string{}
	}
	writeJSON(w, http.StatusOK, icons)
}
