package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"familypoints/internal/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ViewerContextKey carries the parsed viewer claims for a request
const ViewerContextKey ContextKey = "viewer"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessions *session.Manager
	log      zerolog.Logger
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessions *session.Manager, log zerolog.Logger) *Middleware {
	return &Middleware{sessions: sessions, log: log}
}

// viewerFromCookie parses the viewer-session cookie, or returns nil when
// there is no valid session
func (m *Middleware) viewerFromCookie(r *http.Request) *session.ViewerClaims {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return nil
	}
	claims, err := m.sessions.Parse(cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}

// RequireViewer requires any selected viewer (parent or kid)
func (m *Middleware) RequireViewer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := m.viewerFromCookie(r)
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "no viewer selected"})
			return
		}
		ctx := context.WithValue(r.Context(), ViewerContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireParent requires the parent viewer; kids get a 403
func (m *Middleware) RequireParent(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireViewer(func(w http.ResponseWriter, r *http.Request) {
		claims := ViewerFromContext(r.Context())
		if claims == nil || claims.Role != session.RoleParent {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "parent access required"})
			return
		}
		next(w, r)
	})
}

// ViewerFromContext retrieves the viewer claims from the request context
func ViewerFromContext(ctx context.Context) *session.ViewerClaims {
	claims, ok := ctx.Value(ViewerContextKey).(*session.ViewerClaims)
	if !ok {
		return nil
	}
	return claims
}

// Logging wraps a handler with request logging
func Logging(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
