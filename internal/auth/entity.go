package auth

import (
	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/session"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthResponse struct {
	apiclient.Envelope
	Token string       `json:"token"`
	User  session.User `json:"user"`
}
