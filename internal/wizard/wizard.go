// Package wizard drives the upload, transcribe, generate and review flow as
// an explicit state machine. Steps only move forward, one at a time; Reset
// is the only way back.
package wizard

import (
	"errors"
	"fmt"

	"github.com/saulo-duarte/voicequiz/internal/generate"
	"github.com/saulo-duarte/voicequiz/internal/quiz"
	"github.com/saulo-duarte/voicequiz/internal/transcribe"
	"github.com/saulo-duarte/voicequiz/internal/upload"
)

var ErrInvalidTransition = errors.New("invalid wizard transition")

// Event is anything Dispatch accepts.
type Event interface {
	event()
}

// AudioUploaded completes the upload step.
type AudioUploaded struct {
	Handle upload.AudioHandle
}

// TranscriptConfirmed completes the transcribe step.
type TranscriptConfirmed struct {
	Transcript transcribe.Transcript
}

// QuizGenerated completes the generate step.
type QuizGenerated struct {
	Result generate.Result
}

// Failed sets the error slot without moving.
type Failed struct {
	Message string
}

// ErrorCleared empties the error slot, as a step does when its action starts.
type ErrorCleared struct{}

type Reset struct{}

func (AudioUploaded) event()       {}
func (TranscriptConfirmed) event() {}
func (QuizGenerated) event()       {}
func (Failed) event()              {}
func (ErrorCleared) event()        {}
func (Reset) event()               {}

// State is the step index plus whatever the completed steps produced.
type State struct {
	Step       Step
	Audio      *upload.AudioHandle
	Transcript *transcribe.Transcript
	Quiz       *quiz.Quiz
	Method     string
	Err        string
}

type Wizard struct {
	state State
}

func New() *Wizard {
	return &Wizard{state: State{Step: StepUpload}}
}

func (w *Wizard) State() State {
	return w.state
}

func (w *Wizard) Step() Step {
	return w.state.Step
}

// Dispatch applies e. A completion event for a step other than the current
// one returns ErrInvalidTransition and leaves the state untouched.
func (w *Wizard) Dispatch(e Event) error {
	switch ev := e.(type) {
	case AudioUploaded:
		if err := w.expect(StepUpload, e); err != nil {
			return err
		}
		handle := ev.Handle
		w.advance(func(s *State) { s.Audio = &handle })
	case TranscriptConfirmed:
		if err := w.expect(StepTranscribe, e); err != nil {
			return err
		}
		transcript := ev.Transcript
		w.advance(func(s *State) { s.Transcript = &transcript })
	case QuizGenerated:
		if err := w.expect(StepGenerate, e); err != nil {
			return err
		}
		q := ev.Result.Quiz
		w.advance(func(s *State) {
			s.Quiz = &q
			s.Method = ev.Result.Method
		})
	case Failed:
		w.state.Err = ev.Message
	case ErrorCleared:
		w.state.Err = ""
	case Reset:
		w.state = State{Step: StepUpload}
	default:
		return fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, e)
	}
	return nil
}

func (w *Wizard) expect(step Step, e Event) error {
	if w.state.Step != step {
		return fmt.Errorf("%w: %T at step %d (%s)", ErrInvalidTransition, e, w.state.Step, w.state.Step)
	}
	return nil
}

func (w *Wizard) advance(apply func(*State)) {
	apply(&w.state)
	w.state.Step++
	w.state.Err = ""
}
