package service

import (
	"errors"
	"testing"

	"github.com/atinyakov/JokeDeck/internal/errs"
	"github.com/atinyakov/JokeDeck/internal/models"
)

func newTestVerifier() *Verifier {
	return NewVerifier(DefaultPrivileged, DefaultRegulars)
}

func TestVerify(t *testing.T) {
	v := newTestVerifier()

	tests := []struct {
		name     string
		username string
		password string
		role     models.Role
		ok       bool
	}{
		{"privileged pair", "admin", "admin123", models.RolePrivileged, true},
		{"first regular", "user1", "password123", models.RoleRegular, true},
		{"second regular", "user2", "password456", models.RoleRegular, true},
		{"wrong password", "user1", "password456", "", false},
		{"admin name with regular password", "admin", "password123", "", false},
		{"unknown pair", "mallory", "hunter2", "", false},
		{"empty pair", "", "", "", false},
	}
	for _, tt := range tests {
		role, ok := v.Verify(tt.username, tt.password)
		if ok != tt.ok || role != tt.role {
			t.Errorf("%s: Verify(%q, %q) = (%q, %v); want (%q, %v)",
				tt.name, tt.username, tt.password, role, ok, tt.role, tt.ok)
		}
	}
}

func TestVerify_PrivilegedPrecedence(t *testing.T) {
	// Same pair configured both privileged and regular: privileged wins.
	pair := Credential{Username: "dual", Password: "pw"}
	v := NewVerifier(pair, []Credential{pair})

	role, ok := v.Verify("dual", "pw")
	if !ok || role != models.RolePrivileged {
		t.Errorf("Verify = (%q, %v); want privileged match", role, ok)
	}
}

func TestAttemptSignIn_NoMatchLeavesSessionUnchanged(t *testing.T) {
	s := NewSessionService(newTestVerifier())
	before := s.Current()

	err := s.AttemptSignIn("user1", "wrong")
	if !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("AttemptSignIn error = %v; want ErrInvalidCredentials", err)
	}
	if s.Current() != before {
		t.Errorf("session changed on failed sign-in: %+v", s.Current())
	}
	if s.Current().Screen != models.ScreenSignIn {
		t.Errorf("screen = %q; want sign-in", s.Current().Screen)
	}
}

func TestAttemptSignIn_Roles(t *testing.T) {
	s := NewSessionService(newTestVerifier())

	if err := s.AttemptSignIn("user2", "password456"); err != nil {
		t.Fatalf("regular sign-in failed: %v", err)
	}
	got := s.Current()
	if got.Identity != "user2" || got.Role != models.RoleRegular || got.Screen != models.ScreenMain {
		t.Errorf("session after regular sign-in = %+v", got)
	}

	s.SignOut()
	if err := s.AttemptSignIn("admin", "admin123"); err != nil {
		t.Fatalf("privileged sign-in failed: %v", err)
	}
	got = s.Current()
	if got.Identity != "admin" || got.Role != models.RolePrivileged || got.Screen != models.ScreenMain {
		t.Errorf("session after privileged sign-in = %+v", got)
	}
}

func TestCompleteSignUp(t *testing.T) {
	s := NewSessionService(newTestVerifier())
	s.BeginSignUp()

	if err := s.CompleteSignUp("   "); !errors.Is(err, errs.ErrEmptyUsername) {
		t.Fatalf("CompleteSignUp blank error = %v; want ErrEmptyUsername", err)
	}
	if s.Current().SignedIn() {
		t.Fatal("blank sign-up started a session")
	}

	if err := s.CompleteSignUp("alice"); err != nil {
		t.Fatalf("CompleteSignUp failed: %v", err)
	}
	got := s.Current()
	if got.Identity != "alice" || got.Role != models.RoleRegular || got.Screen != models.ScreenMain {
		t.Errorf("session after sign-up = %+v", got)
	}
}

func TestSwitchScreens(t *testing.T) {
	s := NewSessionService(newTestVerifier())

	s.SwitchToSignUp()
	if s.Current().Screen != models.ScreenSignUp {
		t.Errorf("screen = %q; want sign-up", s.Current().Screen)
	}
	s.SwitchToSignIn()
	if s.Current().Screen != models.ScreenSignIn {
		t.Errorf("screen = %q; want sign-in", s.Current().Screen)
	}

	// Screen toggles are ignored while a session is active.
	if err := s.AttemptSignIn("user1", "password123"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	s.SwitchToSignUp()
	if s.Current().Screen != models.ScreenMain {
		t.Errorf("screen = %q; want main", s.Current().Screen)
	}
}

func TestSignOut(t *testing.T) {
	s := NewSessionService(newTestVerifier())
	if err := s.AttemptSignIn("admin", "admin123"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	s.SignOut()
	got := s.Current()
	if got.SignedIn() || got.Role != models.RoleRegular || got.Screen != models.ScreenSignIn {
		t.Errorf("session after sign-out = %+v", got)
	}
}
