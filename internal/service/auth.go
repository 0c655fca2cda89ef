// Package service provides the business logic for sessions, card collections
// and navigation. All state lives in the client process.
package service

import (
	"strings"

	"github.com/atinyakov/JokeDeck/internal/errs"
	"github.com/atinyakov/JokeDeck/internal/models"
)

// Credential is a username/password pair.
type Credential struct {
	Username string
	Password string
}

// DefaultPrivileged is the fixed credential that grants the privileged role.
var DefaultPrivileged = Credential{Username: "admin", Password: "admin123"}

// DefaultRegulars is the fixed list of known regular accounts.
var DefaultRegulars = []Credential{
	{Username: "user1", Password: "password123"},
	{Username: "user2", Password: "password456"},
}

// Verifier decides which role, if any, a credential pair grants.
// It is pure and has no side effects.
type Verifier struct {
	privileged Credential
	regulars   []Credential
}

// NewVerifier constructs a Verifier over the given credential sets.
func NewVerifier(privileged Credential, regulars []Credential) *Verifier {
	return &Verifier{privileged: privileged, regulars: regulars}
}

// Verify returns the role granted by the pair and whether it matched at all.
// The privileged credential is checked before the regular list, so it wins
// if both happen to be configured identically.
func (v *Verifier) Verify(username, password string) (models.Role, bool) {
	if username == v.privileged.Username && password == v.privileged.Password {
		return models.RolePrivileged, true
	}
	for _, c := range v.regulars {
		if c.Username == username && c.Password == password {
			return models.RoleRegular, true
		}
	}
	return "", false
}

// SessionService owns the single client session and its screen transitions.
// The session starts on the sign-in screen; the main screen is entered only
// through a successful sign-up or sign-in and left only through SignOut.
type SessionService struct {
	verifier *Verifier
	session  models.Session
}

// NewSessionService constructs a SessionService using the provided verifier.
func NewSessionService(verifier *Verifier) *SessionService {
	return &SessionService{
		verifier: verifier,
		session:  models.Session{Role: models.RoleRegular, Screen: models.ScreenSignIn},
	}
}

// Current returns the session state.
func (s *SessionService) Current() models.Session {
	return s.session
}

// BeginSignUp presents the sign-up screen. No identity is assumed.
func (s *SessionService) BeginSignUp() {
	s.SwitchToSignUp()
}

// SwitchToSignUp shows the sign-up screen. No-op while a session is active.
func (s *SessionService) SwitchToSignUp() {
	s.switchScreen(models.ScreenSignUp)
}

// SwitchToSignIn shows the sign-in screen. No-op while a session is active.
func (s *SessionService) SwitchToSignIn() {
	s.switchScreen(models.ScreenSignIn)
}

func (s *SessionService) switchScreen(mode models.ScreenMode) {
	if s.session.SignedIn() {
		return
	}
	s.session.Screen = mode
}

// CompleteSignUp starts a session for the freshly created identity with the
// regular role. An empty username (after trimming) is a validation error and
// leaves the session unchanged.
func (s *SessionService) CompleteSignUp(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.ErrEmptyUsername
	}
	s.session = models.Session{Identity: username, Role: models.RoleRegular, Screen: models.ScreenMain}
	return nil
}

// AttemptSignIn verifies the pair and enters the main screen on a match.
// On no match it returns errs.ErrInvalidCredentials and the session is left
// untouched.
func (s *SessionService) AttemptSignIn(username, password string) error {
	role, ok := s.verifier.Verify(username, password)
	if !ok {
		return errs.ErrInvalidCredentials
	}
	s.session = models.Session{Identity: username, Role: role, Screen: models.ScreenMain}
	return nil
}

// SignOut clears the identity, resets the role and returns to sign-in.
func (s *SessionService) SignOut() {
	s.session = models.Session{Role: models.RoleRegular, Screen: models.ScreenSignIn}
}
