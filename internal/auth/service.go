// Package auth is the authentication module. It verifies credentials through
// an injected verifier, tracks daily login streaks, and announces account
// activity on the event bus. Password hashing, token issuance, and user
// persistence live behind the CredentialVerifier boundary.
package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/typetrain/internal/event"
	"github.com/dshills/typetrain/internal/event/events"
)

var (
	// ErrEmptyLoginID is returned when a login name is blank.
	ErrEmptyLoginID = errors.New("login id cannot be empty")

	// ErrInvalidCredentials is returned when credential verification fails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLoginVetoed is returned when the auth:login emission is cancelled
	// by middleware or a listener.
	ErrLoginVetoed = errors.New("login vetoed")
)

// CredentialVerifier checks a login attempt and resolves it to a user ID.
// Implementations own password hashing and storage.
type CredentialVerifier interface {
	Verify(loginID, password string) (userID string, err error)
}

// LoginStats tracks a user's daily login streak.
type LoginStats struct {
	// LastLoginDay is the most recent login date, truncated to midnight.
	LastLoginDay time.Time

	// ConsecutiveDays is the current daily streak.
	ConsecutiveDays int

	// MaxConsecutiveDays is the best streak reached.
	MaxConsecutiveDays int

	// TotalDays is the number of distinct login days.
	TotalDays int
}

// updateFor folds a login on the given day into the stats. Same-day logins
// leave the stats unchanged; a gap of exactly one day extends the streak,
// anything longer resets it.
func (s LoginStats) updateFor(day time.Time) LoginStats {
	day = day.Truncate(24 * time.Hour)

	if s.LastLoginDay.IsZero() {
		return LoginStats{LastLoginDay: day, ConsecutiveDays: 1, MaxConsecutiveDays: 1, TotalDays: 1}
	}
	if !day.After(s.LastLoginDay) {
		return s
	}

	next := LoginStats{
		LastLoginDay:       day,
		ConsecutiveDays:    1,
		MaxConsecutiveDays: s.MaxConsecutiveDays,
		TotalDays:          s.TotalDays + 1,
	}
	if day.Equal(s.LastLoginDay.AddDate(0, 0, 1)) {
		next.ConsecutiveDays = s.ConsecutiveDays + 1
	}
	if next.ConsecutiveDays > next.MaxConsecutiveDays {
		next.MaxConsecutiveDays = next.ConsecutiveDays
	}
	return next
}

// Service is the authentication module.
type Service struct {
	bus      *event.Bus
	verifier CredentialVerifier
	now      func() time.Time

	mu    sync.Mutex
	stats map[string]LoginStats
}

// NewService creates the auth module on the given bus.
func NewService(bus *event.Bus, verifier CredentialVerifier) *Service {
	return &Service{
		bus:      bus,
		verifier: verifier,
		now:      time.Now,
		stats:    make(map[string]LoginStats),
	}
}

// Register announces a new account and returns its identity. The account
// record itself is stored by the external user store; this module only
// allocates the ID and emits events.Registered.
func (s *Service) Register(loginID string) (events.Registered, error) {
	if loginID == "" {
		return events.Registered{}, ErrEmptyLoginID
	}

	payload := events.Registered{
		UserID:  uuid.NewString(),
		LoginID: loginID,
	}
	s.bus.Emit(events.AuthRegistered, payload)
	return payload, nil
}

// Login verifies the credentials and, if nothing vetoes the cancellable
// auth:login emission, records the login day and returns the login payload.
// A vetoed emission leaves the streak untouched and returns ErrLoginVetoed.
func (s *Service) Login(loginID, password string) (events.LoggedIn, error) {
	userID, err := s.verifier.Verify(loginID, password)
	if err != nil {
		s.bus.Emit(events.AuthLoginFailed, events.LoginFailed{
			LoginID: loginID,
			Reason:  err.Error(),
		})
		return events.LoggedIn{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	now := s.now()

	s.mu.Lock()
	updated := s.stats[userID].updateFor(now)
	s.mu.Unlock()

	payload := events.LoggedIn{
		UserID:             userID,
		LoginID:            loginID,
		LoginAt:            now,
		ConsecutiveDays:    updated.ConsecutiveDays,
		MaxConsecutiveDays: updated.MaxConsecutiveDays,
	}
	if !s.bus.Emit(events.AuthLogin, payload, event.Cancellable()) {
		return events.LoggedIn{}, ErrLoginVetoed
	}

	s.mu.Lock()
	s.stats[userID] = updated
	s.mu.Unlock()

	return payload, nil
}

// Logout announces the end of a user's session.
func (s *Service) Logout(userID string) {
	s.bus.Emit(events.AuthLogout, events.LoggedOut{UserID: userID})
}

// Stats returns the login streak recorded for a user.
func (s *Service) Stats(userID string) (LoginStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.stats[userID]
	return stats, ok
}
