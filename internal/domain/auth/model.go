// Package auth provides authentication domain logic.
package auth

import (
	"context"
	"time"

	"farina/internal/core/apperror"
	appctx "farina/internal/core/context"
	"farina/internal/core/id"
)

// User represents a system user.
type User struct {
	ID                  id.ID      `db:"id" json:"id"`
	Username            string     `db:"username" json:"username"`
	Nome                string     `db:"nome" json:"nome,omitempty"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	Ruolo               string     `db:"ruolo" json:"ruolo"`
	Attivo              bool       `db:"attivo" json:"attivo"`
	LastLoginAt         *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `db:"locked_until" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
	Version             int        `db:"version" json:"version"`
}

// NewUser creates a new user.
func NewUser(username, passwordHash string) *User {
	return &User{
		ID:           id.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Ruolo:        appctx.RuoloOperatore,
		Attivo:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Version:      1,
	}
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if u.Username == "" {
		return apperror.NewValidation("username obbligatorio").WithDetail("field", "username")
	}
	if u.Ruolo != appctx.RuoloAdmin && u.Ruolo != appctx.RuoloOperatore {
		return apperror.NewValidation("ruolo non valido").WithDetail("field", "ruolo")
	}
	return nil
}

// IsAdmin returns true for admin users.
func (u *User) IsAdmin() bool {
	return u.Ruolo == appctx.RuoloAdmin
}

// IsLocked returns true if account is locked.
func (u *User) IsLocked() bool {
	if u.LockedUntil == nil {
		return false
	}
	return time.Now().Before(*u.LockedUntil)
}

// CanLogin checks if user can login.
func (u *User) CanLogin() error {
	if !u.Attivo {
		return apperror.NewForbidden("utente disabilitato")
	}
	if u.IsLocked() {
		return apperror.NewForbidden("utente temporaneamente bloccato")
	}
	return nil
}

// RecordFailedLogin increments failed login counter.
func (u *User) RecordFailedLogin(maxAttempts int, lockDuration time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		lockUntil := time.Now().Add(lockDuration)
		u.LockedUntil = &lockUntil
	}
}

// RecordSuccessfulLogin resets failed login counter.
func (u *User) RecordSuccessfulLogin() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	now := time.Now()
	u.LastLoginAt = &now
}

// RefreshToken represents a refresh token for JWT refresh.
type RefreshToken struct {
	ID            id.ID      `db:"id"`
	UserID        id.ID      `db:"user_id"`
	TokenHash     string     `db:"token_hash"`
	ExpiresAt     time.Time  `db:"expires_at"`
	CreatedAt     time.Time  `db:"created_at"`
	RevokedAt     *time.Time `db:"revoked_at"`
	RevokedReason string     `db:"revoked_reason"`
}

// IsValid checks if refresh token is valid.
func (t *RefreshToken) IsValid() bool {
	if t.RevokedAt != nil {
		return false
	}
	return time.Now().Before(t.ExpiresAt)
}

// TokenPair contains access and refresh tokens.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"`
}

// Credentials for login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserRequest for creating a user (admin only).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nome     string `json:"nome,omitempty"`
	Ruolo    string `json:"ruolo,omitempty"`
}

// ChangePasswordRequest for changing the current user's password.
type ChangePasswordRequest struct {
	PasswordAttuale string `json:"password_attuale"`
	PasswordNuova   string `json:"password_nuova"`
}
