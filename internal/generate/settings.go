package generate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/quiz"
	"github.com/saulo-duarte/voicequiz/internal/upload"
)

const (
	MinQuestions = 1
	MaxQuestions = 50

	NoTypesMessage      = "Please select at least one question type."
	QuestionsMessage    = "Number of questions must be between 1 and 50."
	DifficultyMessage   = "Difficulty must be easy, medium or hard."
	NoTranscriptMessage = "There is no transcript to generate a quiz from."
)

var Difficulties = []string{"easy", "medium", "hard"}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Settings holds the raw form values. NumQuestions stays text until Request
// coerces it.
type Settings struct {
	Difficulty   string
	NumQuestions string
	MCQ          bool
	TrueFalse    bool
	ShortAnswer  bool
}

func DefaultSettings() Settings {
	return Settings{
		Difficulty:   "medium",
		NumQuestions: "10",
		MCQ:          true,
		TrueFalse:    true,
		ShortAnswer:  true,
	}
}

// Enable switches one question type on or off.
func (s *Settings) Enable(t quiz.QuestionType, on bool) {
	switch t {
	case quiz.TypeMCQ:
		s.MCQ = on
	case quiz.TypeTrueFalse:
		s.TrueFalse = on
	case quiz.TypeShortAnswer:
		s.ShortAnswer = on
	}
}

// SetTypes enables exactly the comma separated types in list.
func (s *Settings) SetTypes(list string) error {
	s.MCQ, s.TrueFalse, s.ShortAnswer = false, false, false
	for _, raw := range strings.Split(list, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		switch quiz.QuestionType(name) {
		case quiz.TypeMCQ, quiz.TypeTrueFalse, quiz.TypeShortAnswer:
			s.Enable(quiz.QuestionType(name), true)
		default:
			return apperr.Validation(fmt.Sprintf("Unknown question type %q.", raw))
		}
	}
	return nil
}

// QuestionTypes lists the enabled types in the fixed order.
func (s Settings) QuestionTypes() []quiz.QuestionType {
	enabled := map[quiz.QuestionType]bool{
		quiz.TypeMCQ:         s.MCQ,
		quiz.TypeTrueFalse:   s.TrueFalse,
		quiz.TypeShortAnswer: s.ShortAnswer,
	}
	types := make([]quiz.QuestionType, 0, len(quiz.AllTypes))
	for _, t := range quiz.AllTypes {
		if enabled[t] {
			types = append(types, t)
		}
	}
	return types
}

// Request builds the generation payload. An empty type selection is checked
// before anything else; the question count is coerced to an integer.
func (s Settings) Request(transcript string, handle upload.AudioHandle) (*Request, error) {
	types := s.QuestionTypes()
	if len(types) == 0 {
		return nil, apperr.Validation(NoTypesMessage)
	}

	n, err := strconv.Atoi(strings.TrimSpace(s.NumQuestions))
	if err != nil {
		return nil, apperr.Validation(QuestionsMessage)
	}

	req := &Request{
		TranscriptText: transcript,
		Filename:       handle.DisplayName(),
		Difficulty:     strings.ToLower(strings.TrimSpace(s.Difficulty)),
		NumQuestions:   n,
		QuestionTypes:  types,
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperr.Validation(validationMessage(err))
	}
	return req, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Please check the quiz settings."
	}
	switch verrs[0].Field() {
	case "TranscriptText":
		return NoTranscriptMessage
	case "Difficulty":
		return DifficultyMessage
	case "NumQuestions":
		return QuestionsMessage
	case "QuestionTypes":
		return NoTypesMessage
	}
	return "Please check the quiz settings."
}
