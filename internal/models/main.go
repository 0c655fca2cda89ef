// Package models defines the core data structures for cards and sessions.
package models

// Card is a single question/answer flip card.
type Card struct {
	// Question is the prompt side of the card.
	Question string `json:"question"`
	// Answer is the hidden side of the card.
	Answer string `json:"answer"`
	// Author is the identity that created the card.
	Author string `json:"author"`
}

// Role defines the set of privilege levels a session can hold.
type Role string

const (
	// RoleRegular is the default role for any signed-in identity.
	RoleRegular Role = "regular"
	// RolePrivileged is granted only by the fixed privileged credential.
	RolePrivileged Role = "privileged"
)

// ScreenMode identifies which view the client is presenting.
type ScreenMode string

const (
	// ScreenSignUp is the account-creation form.
	ScreenSignUp ScreenMode = "sign_up"
	// ScreenSignIn is the credential form.
	ScreenSignIn ScreenMode = "sign_in"
	// ScreenMain is the card-browsing view, reachable only when signed in.
	ScreenMain ScreenMode = "main"
)

// Session holds the signed-in identity, its role and the active screen.
// Identity is empty exactly when Screen is not ScreenMain.
type Session struct {
	Identity string
	Role     Role
	Screen   ScreenMode
}

// SignedIn reports whether the session carries an identity.
func (s Session) SignedIn() bool {
	return s.Identity != ""
}

// Coordinates is a geolocation fix.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
