package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/voicequiz/internal/config"
	util "github.com/saulo-duarte/voicequiz/internal/utils"
)

const (
	TokenKey = "token"
	UserKey  = "user"
)

var ErrIncomplete = errors.New("session requires both user and token")

type User struct {
	ID       util.ID `json:"id,omitempty"`
	Username string  `json:"username"`
	Email    string  `json:"email,omitempty"`
}

type Session struct {
	User  User
	Token string
}

// Sealer protects the token at rest. *config.Cipher satisfies it.
type Sealer interface {
	Seal(text string) (string, error)
	Open(encoded string) (string, error)
}

// Store owns the authenticated session. User and token are persisted and
// cleared together; a half-present pair restores as unauthenticated.
type Store struct {
	storage Storage
	sealer  Sealer
	current *Session
}

func NewStore(storage Storage, sealer Sealer) *Store {
	return &Store{storage: storage, sealer: sealer}
}

// Restore loads the persisted session without contacting the server.
func (s *Store) Restore() (*Session, bool) {
	log := config.WithContext(context.Background())
	s.current = nil

	token, okToken, err := s.storage.Get(TokenKey)
	if err != nil {
		log.WithError(err).Warn("failed to read cached token")
		return nil, false
	}
	rawUser, okUser, err := s.storage.Get(UserKey)
	if err != nil {
		log.WithError(err).Warn("failed to read cached user")
		return nil, false
	}
	if !okToken || !okUser || token == "" || rawUser == "" {
		return nil, false
	}

	if s.sealer != nil {
		token, err = s.sealer.Open(token)
		if err != nil {
			log.WithError(err).Warn("cached token could not be opened")
			return nil, false
		}
	}

	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		log.WithError(err).Warn("cached user is not valid json")
		return nil, false
	}

	s.current = &Session{User: user, Token: token}
	log.WithFields(logrus.Fields{"username": user.Username}).Debug("session restored")
	return s.current, true
}

func (s *Store) Save(user User, token string) error {
	if token == "" {
		return ErrIncomplete
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	stored := token
	if s.sealer != nil {
		if stored, err = s.sealer.Seal(token); err != nil {
			return fmt.Errorf("seal token: %w", err)
		}
	}

	if err := s.storage.Set(TokenKey, stored); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.storage.Set(UserKey, string(rawUser)); err != nil {
		_ = s.storage.Remove(TokenKey)
		return fmt.Errorf("persist user: %w", err)
	}

	s.current = &Session{User: user, Token: token}
	return nil
}

// Clear is idempotent.
func (s *Store) Clear() error {
	s.current = nil
	errToken := s.storage.Remove(TokenKey)
	errUser := s.storage.Remove(UserKey)
	return errors.Join(errToken, errUser)
}

func (s *Store) Current() (*Session, bool) {
	return s.current, s.current != nil
}
