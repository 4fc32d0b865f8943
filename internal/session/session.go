// Package session carries the active viewer selection across requests as a
// signed cookie. There are no credentials involved: selecting a viewer is a
// screen-routing concern, not authentication.
package session

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"familypoints/internal/models"
)

// CookieName is the viewer-session cookie
const CookieName = "fp_viewer"

// Viewer roles
const (
	RoleParent = "parent"
	RoleKid    = "kid"
)

// ViewerClaims are the JWT claims for the selected viewer
type ViewerClaims struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies viewer-session tokens
type Manager struct {
	secret   []byte
	duration time.Duration
}

// NewManager creates a session manager. An empty secret gets a random one,
// which invalidates outstanding sessions on restart — acceptable, since the
// ledger state they point at resets with the process anyway.
func NewManager(secret string, duration time.Duration) *Manager {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("failed to generate session secret: %v", err))
		}
	}
	return &Manager{secret: key, duration: duration}
}

// Issue creates a signed token for the given viewer and role
func (m *Manager) Issue(viewer models.User, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.duration)
	claims := ViewerClaims{
		Name:   viewer.Name,
		Avatar: viewer.Avatar,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   viewer.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign viewer token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse verifies a token and returns its viewer claims
func (m *Manager) Parse(tokenString string) (*ViewerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ViewerClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid viewer token: %w", err)
	}

	claims, ok := token.Claims.(*ViewerClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid viewer token claims")
	}
	return claims, nil
}

// Viewer rebuilds the viewer projection from claims
func (c *ViewerClaims) Viewer() models.User {
	return models.User{ID: c.Subject, Name: c.Name, Avatar: c.Avatar}
}

// isSecureRequest determines if the request arrived over HTTPS, directly or
// behind a reverse proxy
func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}

// NewCookie creates the viewer-session cookie with proper security flags
func NewCookie(r *http.Request, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}

// DeleteCookie creates a cookie that clears the viewer session
func DeleteCookie(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
	}
}
