// Package guard decides whether a session may see a protected view.
package guard

import (
	"slices"

	"github.com/conectavoz/conectavoz/internal/models"
	"github.com/conectavoz/conectavoz/internal/session"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends the caller to the login view.
	RedirectLogin
	// RedirectHome sends an authenticated but unauthorized caller to the
	// default landing view. Never login, and never an error: a role
	// mismatch must not reveal whether the view exists.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Check gates a view. The ordering is load-bearing: authentication is
// checked strictly before role membership.
//
//  1. Not authenticated (including a still-pending session): login.
//  2. Authenticated but no user record, an inconsistent transient state:
//     login, failing closed.
//  3. Required roles set and the user's role not among them: home.
//  4. Otherwise the view renders.
func Check(snap session.Snapshot, requiredRoles ...models.Role) Decision {
	if !snap.IsAuthenticated() {
		return RedirectLogin
	}

	if snap.User == nil {
		return RedirectLogin
	}

	if len(requiredRoles) > 0 && !slices.Contains(requiredRoles, snap.User.Role) {
		return RedirectHome
	}

	return Allow
}
