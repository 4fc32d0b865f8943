package session

import (
	"strings"
	"testing"
	"time"

	"familypoints/internal/models"
)

func TestIssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	viewer := models.User{ID: "kid-1", Name: "Sara", Avatar: "👧"}

	token, expiresAt, err := manager.Issue(viewer, RoleKid)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}
	if time.Until(expiresAt) > time.Hour || time.Until(expiresAt) < 59*time.Minute {
		t.Errorf("expiresAt = %v, want roughly one hour out", expiresAt)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if claims.Subject != "kid-1" || claims.Role != RoleKid {
		t.Errorf("claims = %+v, want subject kid-1 role kid", claims)
	}
	if got := claims.Viewer(); got != viewer {
		t.Errorf("Viewer() = %+v, want %+v", got, viewer)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)
	token, _, err := manager.Issue(models.User{ID: "parent"}, RoleParent)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := manager.Parse(token); err == nil {
		t.Error("Parse() accepted an expired token")
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	token, _, err := manager.Issue(models.User{ID: "parent"}, RoleParent)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := manager.Parse(tampered); err == nil {
		t.Error("Parse() accepted a tampered token")
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	token, _, err := NewManager("secret-a", time.Hour).Issue(models.User{ID: "parent"}, RoleParent)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Error("Parse() accepted a token signed with a different secret")
	}
}

func TestEmptySecretGetsRandomKey(t *testing.T) {
	a := NewManager("", time.Hour)
	b := NewManager("", time.Hour)

	token, _, err := a.Issue(models.User{ID: "parent"}, RoleParent)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := a.Parse(token); err != nil {
		t.Errorf("manager cannot parse its own token: %v", err)
	}
	if _, err := b.Parse(token); err == nil {
		t.Error("random secrets must differ between managers")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	for _, input := range []string{"", "not-a-token", strings.Repeat("a.", 40)} {
		if _, err := manager.Parse(input); err == nil {
			t.Errorf("Parse(%q) accepted garbage", input)
		}
	}
}
