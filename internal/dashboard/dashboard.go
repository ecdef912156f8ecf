package dashboard

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/config"
	"github.com/saulo-duarte/voicequiz/internal/quiz"
	"github.com/saulo-duarte/voicequiz/internal/session"
)

const (
	DeletePrompt        = "Are you sure you want to delete this quiz?"
	DeleteFailedMessage = "Failed to delete quiz"
)

type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

type Dashboard struct {
	service Service
	user    session.User

	history    []HistoryEntry
	statistics *Statistics
}

func NewDashboard(s Service, user session.User) *Dashboard {
	return &Dashboard{service: s, user: user}
}

func (d *Dashboard) User() session.User {
	return d.user
}

func (d *Dashboard) History() []HistoryEntry {
	return d.history
}

func (d *Dashboard) Statistics() *Statistics {
	return d.statistics
}

// Load reads history and statistics concurrently. Reads are best effort: if
// either fails the failure is logged and both sections stay empty.
func (d *Dashboard) Load(ctx context.Context) {
	var (
		history []HistoryEntry
		stats   *Statistics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = d.service.History(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = d.service.Statistics(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		config.WithContext(ctx).WithError(err).Warn("failed to load dashboard data")
		d.history, d.statistics = nil, nil
		return
	}
	d.history, d.statistics = history, stats
}

// Delete asks c first and only calls the server on a yes. The entry is
// dropped from the local list once the server confirms; there is no refetch.
func (d *Dashboard) Delete(ctx context.Context, id quiz.ID, c Confirmer) (bool, error) {
	ok, err := c.Confirm(DeletePrompt)
	if err != nil || !ok {
		return false, err
	}

	log := config.WithContext(ctx).WithField("quiz_id", string(id))
	if err := d.service.DeleteQuiz(ctx, id); err != nil {
		log.WithError(err).Warn("failed to delete quiz")
		return false, apperr.Resolved(err, DeleteFailedMessage)
	}

	d.history = slices.DeleteFunc(d.history, func(e HistoryEntry) bool { return e.ID == id })
	log.Info("quiz deleted")
	return true, nil
}
