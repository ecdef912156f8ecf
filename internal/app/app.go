// Package app is the top-level shell: which view is active, who is logged in,
// and the one wizard run in progress.
package app

import (
	"errors"

	"github.com/saulo-duarte/voicequiz/internal/config"
	"github.com/saulo-duarte/voicequiz/internal/session"
	"github.com/saulo-duarte/voicequiz/internal/wizard"
)

type View int

const (
	ViewAuth View = iota
	ViewDashboard
	ViewWizard
)

func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewWizard:
		return "wizard"
	default:
		return "auth"
	}
}

var ErrNotAuthenticated = errors.New("not logged in")

type App struct {
	store  *session.Store
	wizard *wizard.Wizard
	view   View
}

func New(store *session.Store) *App {
	return &App{store: store, wizard: wizard.New(), view: ViewAuth}
}

// Start restores a cached session. With one the app opens on the dashboard,
// otherwise on the auth view.
func (a *App) Start() View {
	if _, ok := a.store.Restore(); ok {
		a.view = ViewDashboard
	} else {
		a.view = ViewAuth
	}
	return a.view
}

func (a *App) View() View {
	return a.view
}

func (a *App) Wizard() *wizard.Wizard {
	return a.wizard
}

func (a *App) Session() (*session.Session, bool) {
	return a.store.Current()
}

// AuthSucceeded is called once the auth handler has saved the session.
func (a *App) AuthSucceeded() error {
	if _, ok := a.store.Current(); !ok {
		return ErrNotAuthenticated
	}
	a.view = ViewDashboard
	return nil
}

// Logout clears the session and the wizard. Calling it again is a no-op.
func (a *App) Logout() error {
	err := a.store.Clear()
	if err != nil {
		config.Log.WithError(err).Error("failed to clear session")
	}
	a.resetWizard()
	a.view = ViewAuth
	return err
}

// StartNewQuiz opens a fresh wizard run.
func (a *App) StartNewQuiz() error {
	if _, ok := a.store.Current(); !ok {
		return ErrNotAuthenticated
	}
	a.resetWizard()
	a.view = ViewWizard
	return nil
}

func (a *App) BackToDashboard() error {
	if _, ok := a.store.Current(); !ok {
		return ErrNotAuthenticated
	}
	a.resetWizard()
	a.view = ViewDashboard
	return nil
}

func (a *App) resetWizard() {
	// Reset is valid in every state.
	_ = a.wizard.Dispatch(wizard.Reset{})
}
