package auth

import (
	"context"
	"errors"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/config"
	"github.com/saulo-duarte/voicequiz/internal/session"
)

const FallbackMessage = "Authentication failed"

var errMissingToken = errors.New("auth response has no token")

type Handler struct {
	service Service
	store   *session.Store
}

func NewHandler(s Service, store *session.Store) *Handler {
	return &Handler{service: s, store: store}
}

// Submit validates the form, makes exactly one login or signup call and, on
// success, persists the session. Failures land in form.Err.
func (h *Handler) Submit(ctx context.Context, form *Form) (*session.Session, error) {
	log := config.WithContext(ctx).WithField("mode", form.Mode.String())

	form.Err = ""
	payload, err := form.Payload()
	if err != nil {
		form.Err = apperr.UserMessage(err, FallbackMessage)
		return nil, err
	}

	var resp *AuthResponse
	switch req := payload.(type) {
	case LoginRequest:
		resp, err = h.service.Login(ctx, req)
	case SignupRequest:
		resp, err = h.service.Signup(ctx, req)
	}
	if err == nil && resp.Token == "" {
		err = apperr.Transport(errMissingToken)
	}
	if err != nil {
		log.WithError(err).Warn("authentication failed")
		form.Err = apperr.UserMessage(err, FallbackMessage)
		return nil, err
	}

	if err := h.store.Save(resp.User, resp.Token); err != nil {
		log.WithError(err).Error("failed to persist session")
		form.Err = FallbackMessage
		return nil, err
	}

	log.WithField("username", resp.User.Username).Info("authenticated")
	current, _ := h.store.Current()
	return current, nil
}
