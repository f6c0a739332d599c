package dto

import (
	"time"

	"farina/internal/domain/auth"
)

// --- Request DTOs ---

// LoginRequest for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{
		Username: r.Username,
		Password: r.Password,
	}
}

// RefreshTokenRequest for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateUserRequest for creating a user (admin only).
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Nome     string `json:"nome"`
	Ruolo    string `json:"ruolo"`
}

// ToAuthRequest converts to domain request.
func (r *CreateUserRequest) ToAuthRequest() auth.CreateUserRequest {
	return auth.CreateUserRequest{
		Username: r.Username,
		Password: r.Password,
		Nome:     r.Nome,
		Ruolo:    r.Ruolo,
	}
}

// ChangePasswordRequest for changing the current user's password.
type ChangePasswordRequest struct {
	PasswordAttuale string `json:"password_attuale" binding:"required"`
	PasswordNuova   string `json:"password_nuova" binding:"required,min=8"`
}

// SetAttivoRequest enables or disables a user account.
type SetAttivoRequest struct {
	Attivo bool `json:"attivo"`
}

// --- Response DTOs ---

// TokenResponse represents token pair response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"`
}

// FromTokenPair creates response from domain token pair.
func FromTokenPair(tp *auth.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  tp.AccessToken,
		RefreshToken: tp.RefreshToken,
		ExpiresAt:    tp.ExpiresAt,
		TokenType:    tp.TokenType,
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Nome        string     `json:"nome,omitempty"`
	Ruolo       string     `json:"ruolo"`
	Attivo      bool       `json:"attivo"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FromUser creates response from domain user.
func FromUser(u *auth.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Nome:        u.Nome,
		Ruolo:       u.Ruolo,
		Attivo:      u.Attivo,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// LoginResponse includes tokens and user info.
type LoginResponse struct {
	Tokens *TokenResponse `json:"tokens"`
	User   *UserResponse  `json:"user"`
}
