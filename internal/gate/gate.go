// Package gate implements the storefront's entry gate: a passphrase
// prompt with per-client attempt limiting. It is a UI affordance, not a
// security boundary — the comparison happens against a configured value
// and buys nothing beyond a casual speed bump.
package gate

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrLocked rejects submissions while a client is locked out.
var ErrLocked = errors.New("gate locked")

// ErrWrongPassword rejects a failed comparison.
var ErrWrongPassword = errors.New("wrong password")

// LockedError carries how long the lockout still has to run.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("gate locked for %s", e.Remaining.Round(time.Second))
}

func (e *LockedError) Unwrap() error { return ErrLocked }

type entry struct {
	attempts    int
	lockedUntil time.Time
}

// Gate tracks submission attempts per client. Three consecutive wrong
// passwords lock the client out for a fixed duration; the counter
// resets once the lockout expires.
type Gate struct {
	mu      sync.Mutex
	entries map[string]*entry

	secret      string
	maxAttempts int
	lockout     time.Duration
	now         func() time.Time
}

// New builds a Gate. A non-positive maxAttempts defaults to 3 and a
// non-positive lockout to 30 minutes.
func New(secret string, maxAttempts int, lockout time.Duration) *Gate {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if lockout <= 0 {
		lockout = 30 * time.Minute
	}
	return &Gate{
		entries:     map[string]*entry{},
		secret:      secret,
		maxAttempts: maxAttempts,
		lockout:     lockout,
		now:         time.Now,
	}
}

// Submit checks a password for a client. While locked the password is
// not even compared. A correct password clears the client's record.
func (g *Gate) Submit(clientID, password string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	e, ok := g.entries[clientID]
	if !ok {
		e = &entry{}
		g.entries[clientID] = e
	}

	if !e.lockedUntil.IsZero() {
		if now.Before(e.lockedUntil) {
			return &LockedError{Remaining: e.lockedUntil.Sub(now)}
		}
		e.attempts = 0
		e.lockedUntil = time.Time{}
	}

	if password == g.secret {
		delete(g.entries, clientID)
		return nil
	}

	e.attempts++
	if e.attempts >= g.maxAttempts {
		e.lockedUntil = now.Add(g.lockout)
		return &LockedError{Remaining: g.lockout}
	}
	return ErrWrongPassword
}

// RemainingAttempts reports how many submissions are left before the
// client locks out.
func (g *Gate) RemainingAttempts(clientID string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.entries[clientID]
	if !ok {
		return g.maxAttempts
	}
	if !e.lockedUntil.IsZero() && g.now().Before(e.lockedUntil) {
		return 0
	}
	remaining := g.maxAttempts - e.attempts
	if remaining < 0 {
		return 0
	}
	return remaining
}
