package events

import "time"

// AuthPrefix is the namespace prefix for authentication events.
const AuthPrefix = "auth"

// Authentication event names.
const (
	// AuthRegistered is emitted after a new user account is created.
	AuthRegistered = "auth:registered"

	// AuthLogin is emitted after a successful login. The emission is
	// cancellable: a before hook or listener may veto it, and the auth
	// module then refuses the login.
	AuthLogin = "auth:login"

	// AuthLoginFailed is emitted when credential verification fails.
	AuthLoginFailed = "auth:login_failed"

	// AuthLogout is emitted when a user ends their session.
	AuthLogout = "auth:logout"
)

// Registered is the payload for AuthRegistered.
type Registered struct {
	// UserID identifies the new account.
	UserID string

	// LoginID is the user-chosen login name.
	LoginID string
}

// LoggedIn is the payload for AuthLogin.
type LoggedIn struct {
	// UserID identifies the account.
	UserID string

	// LoginID is the login name used.
	LoginID string

	// LoginAt is when the login happened.
	LoginAt time.Time

	// ConsecutiveDays is the current daily login streak including this login.
	ConsecutiveDays int

	// MaxConsecutiveDays is the best streak the account has reached.
	MaxConsecutiveDays int
}

// LoginFailed is the payload for AuthLoginFailed.
type LoginFailed struct {
	// LoginID is the login name that was attempted.
	LoginID string

	// Reason describes why the attempt was rejected.
	Reason string
}

// LoggedOut is the payload for AuthLogout.
type LoggedOut struct {
	// UserID identifies the account.
	UserID string
}
