package transcribe

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/config"
	"github.com/saulo-duarte/voicequiz/internal/upload"
	util "github.com/saulo-duarte/voicequiz/internal/utils"
)

const (
	DeclinedMessage = "Transcription failed"
	FailedMessage   = "Failed to transcribe audio. Try a different audio file with clearer speech."
	DefaultLanguage = "English"
)

var (
	ErrAlreadyEntered = errors.New("transcription already requested for this step")
	ErrNotReady       = errors.New("no transcript to confirm")
)

// Step requests the transcript once, when it becomes active, and then waits
// for the user to confirm it. There is no retry; a bad transcript means a new
// upload.
type Step struct {
	service  Service
	handle   upload.AudioHandle
	language string

	entered    bool
	transcript *Transcript
}

func NewStep(s Service, handle upload.AudioHandle, language string) *Step {
	return &Step{service: s, handle: handle, language: language}
}

func (s *Step) Transcript() *Transcript {
	return s.transcript
}

// Enter fires the transcription request. Only the first call reaches the
// server; later calls return ErrAlreadyEntered.
func (s *Step) Enter(ctx context.Context) (*Transcript, error) {
	if s.entered {
		return nil, ErrAlreadyEntered
	}
	s.entered = true

	log := config.WithContext(ctx).WithField("filename", s.handle.Filename)

	t, err := s.service.Transcribe(ctx, Request{Filename: s.handle.Filename, Language: s.language})
	if err != nil {
		log.WithError(err).Warn("transcription failed")
		return nil, apperr.Resolved(err, apperr.StepMessage(err, DeclinedMessage, FailedMessage))
	}

	s.transcript = t
	log.WithField("word_count", t.WordCount).Info("audio transcribed")
	return t, nil
}

// Confirm is the user's "looks good"; it hands the transcript on.
func (s *Step) Confirm() (*Transcript, error) {
	if s.transcript == nil {
		return nil, ErrNotReady
	}
	return s.transcript, nil
}

func (s *Step) Summary(w io.Writer) {
	t := s.transcript
	if t == nil {
		return
	}
	lang := t.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	fmt.Fprintf(w, "Language Detected: %s\n", lang)
	fmt.Fprintf(w, "Word Count: %d\n", t.WordCount)
	if t.Duration != nil && *t.Duration > 0 {
		fmt.Fprintf(w, "Audio Duration: %s minutes\n", util.FormatClock(*t.Duration))
	}
	fmt.Fprintf(w, "\nTranscript:\n%s\n", t.Text)
}
