package generate

import (
	"context"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/config"
	"github.com/saulo-duarte/voicequiz/internal/transcribe"
	"github.com/saulo-duarte/voicequiz/internal/upload"
)

const (
	DeclinedMessage = "Quiz generation failed"
	FailedMessage   = "Failed to generate quiz"
)

type Step struct {
	service    Service
	handle     upload.AudioHandle
	transcript transcribe.Transcript

	Settings Settings
}

func NewStep(s Service, handle upload.AudioHandle, transcript transcribe.Transcript) *Step {
	return &Step{
		service:    s,
		handle:     handle,
		transcript: transcript,
		Settings:   DefaultSettings(),
	}
}

// Generate submits the current settings. Invalid settings never reach the
// server.
func (s *Step) Generate(ctx context.Context) (*Result, error) {
	req, err := s.Settings.Request(s.transcript.Text, s.handle)
	if err != nil {
		return nil, err
	}

	log := config.WithContext(ctx).
		WithField("difficulty", req.Difficulty).
		WithField("num_questions", req.NumQuestions).
		WithField("question_types", req.QuestionTypes)

	res, err := s.service.Generate(ctx, req)
	if err != nil {
		log.WithError(err).Warn("quiz generation failed")
		return nil, apperr.Resolved(err, apperr.StepMessage(err, DeclinedMessage, FailedMessage))
	}

	log.WithField("quiz_id", string(res.Quiz.ID)).WithField("method", res.Method).Info("quiz generated")
	return res, nil
}
