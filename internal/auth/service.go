package auth

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
}

type service struct {
	client *apiclient.Client
}

// NewService takes the unauthenticated client: login and signup carry no
// bearer token.
func NewService(client *apiclient.Client) Service {
	return &service{client: client}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.JSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.JSON(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
