package model

import "time"

const RoleAdmin = "admin"

type User struct {
	ID           string     `bson:"_id" json:"id"`
	Username     string     `bson:"username" json:"username"`
	Email        string     `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	Role         string     `bson:"role" json:"role"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	LastLogin    *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// LoginAttempts is the failure bookkeeping of one login identity.
type LoginAttempts struct {
	Failures    int       `json:"failures"`
	LastFailure time.Time `json:"last_failure"`
	LockedUntil time.Time `json:"locked_until"`
}

// Locked reports whether the identity is locked out at now.
func (l LoginAttempts) Locked(now time.Time) bool {
	return l.LockedUntil.After(now)
}

// Fail records a failure at now. Failures older than window and expired locks
// are forgotten first. Reaching limit locks the identity for window.
func (l LoginAttempts) Fail(now time.Time, limit int, window time.Duration) LoginAttempts {
	if !l.Locked(now) &&
		(!l.LockedUntil.IsZero() || (!l.LastFailure.IsZero() && now.Sub(l.LastFailure) > window)) {
		l = LoginAttempts{}
	}

	l.Failures++
	l.LastFailure = now
	if l.Failures >= limit && !l.Locked(now) {
		l.LockedUntil = now.Add(window)
	}

	return l
}
