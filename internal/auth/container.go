package auth

import (
	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/session"
)

type AuthContainer struct {
	Service Service
	Handler *Handler
}

func NewAuthContainer(client *apiclient.Client, store *session.Store) *AuthContainer {
	service := NewService(client)
	handler := NewHandler(service, store)

	return &AuthContainer{
		Service: service,
		Handler: handler,
	}
}
