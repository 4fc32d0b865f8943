package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"familypoints/internal/ledger"
	"familypoints/internal/models"
	"familypoints/internal/session"
)

// SessionHandler manages viewer selection: who is currently looking at the
// family ledger. There is no password; this is the login-selection screen's
// backend.
type SessionHandler struct {
	store    *ledger.Store
	sessions *session.Manager
	log      zerolog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *ledger.Store, sessions *session.Manager, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{store: store, sessions: sessions, log: log}
}

type selectViewerRequest struct {
	UserID string `json:"user_id"`
}

type viewerResponse struct {
	Viewer *models.User `json:"viewer"`
	Role   string       `json:"role,omitempty"`
}

// Select sets the active viewer: the parent or one of the kids
func (h *SessionHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectViewerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var viewer models.User
	var role string
	if parent := h.store.Parent(); req.UserID == parent.ID {
		viewer = parent
		role = session.RoleParent
	} else {
		kid, err := h.store.Kid(req.UserID)
		if err != nil {
			respondWithError(w, h.log, err)
			return
		}
		viewer = kid.Viewer()
		role = session.RoleKid
	}

	h.store.SetCurrentUser(&viewer)

	token, expiresAt, err := h.sessions.Issue(viewer, role)
	if err != nil {
		respondWithError(w, h.log, err)
		return
	}
	http.SetCookie(w, session.NewCookie(r, token, expiresAt))

	writeJSON(w, http.StatusOK, viewerResponse{Viewer: &viewer, Role: role})
}

// Current returns the active viewer, or a null viewer when logged out
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()
	if viewer == nil {
		writeJSON(w, http.StatusOK, viewerResponse{Viewer: nil})
		return
	}

	role := session.RoleKid
	if viewer.ID == h.store.Parent().ID {
		role = session.RoleParent
	}
	writeJSON(w, http.StatusOK, viewerResponse{Viewer: viewer, Role: role})
}

// Logout clears the active viewer, routing consumers back to the
// selection screen
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.SetCurrentUser(nil)
	http.SetCookie(w, session.DeleteCookie(r))
	w.WriteHeader(http.StatusNoContent)
}
