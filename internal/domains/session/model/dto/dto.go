package dto

import (
	"tripbook/infras/jwt"
	"tripbook/internal/domains/session/model"
)

// LoginRequest signs a shopper in by contact details alone.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email,max=100"`
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type SessionResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	LoggedIn bool   `json:"logged_in"`
}

func (r *SessionResponse) FromModel(s model.Session) {
	r.UserID = s.UserID
	r.Email = s.Email
	r.Name = s.Name
	r.Phone = s.Phone
	r.LoggedIn = s.LoggedIn
}

type LoginResponse struct {
	Session      SessionResponse `json:"session"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int64           `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(s model.Session, tokenPair *jwt.TokenPair) {
	l.Session.FromModel(s)
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
}
