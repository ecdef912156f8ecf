package quiz

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/config"
)

const ExportFailedMessage = "Failed to export PDF"

type Correctness int

const (
	Unknown Correctness = iota
	Correct
	Incorrect
)

func (c Correctness) String() string {
	switch c {
	case Correct:
		return "Correct!"
	case Incorrect:
		return "Incorrect"
	default:
		return ""
	}
}

// Viewer is the take-and-export step. Answers live only here.
type Viewer struct {
	quiz        *Quiz
	method      string
	exporter    Exporter
	answers     map[ID]string
	showAnswers bool
}

func NewViewer(q *Quiz, method string, exporter Exporter) *Viewer {
	return &Viewer{
		quiz:     q,
		method:   method,
		exporter: exporter,
		answers:  make(map[ID]string),
	}
}

func (v *Viewer) Quiz() *Quiz {
	return v.quiz
}

func (v *Viewer) ShowingAnswers() bool {
	return v.showAnswers
}

// Answer records the user's answer for a question. An mcq answer must be
// one of the option letters; a true/false answer must be true or false. An
// empty answer clears it.
func (v *Viewer) Answer(id ID, answer string) error {
	q, ok := v.quiz.Question(id)
	if !ok {
		return apperr.Validation(fmt.Sprintf("Unknown question %q.", id))
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		delete(v.answers, id)
		return nil
	}

	switch q.Type {
	case TypeMCQ:
		if len(q.Options) > 0 && !hasLetter(q.Options, answer) {
			return apperr.Validation("Choose one of " + strings.Join(letters(q.Options), ", ") + ".")
		}
	case TypeTrueFalse:
		if !strings.EqualFold(answer, "true") && !strings.EqualFold(answer, "false") {
			return apperr.Validation("Answer True or False.")
		}
	}

	v.answers[id] = answer
	return nil
}

func (v *Viewer) UserAnswer(id ID) string {
	return v.answers[id]
}

// ToggleAnswers flips answer visibility and reports the new state.
func (v *Viewer) ToggleAnswers() bool {
	v.showAnswers = !v.showAnswers
	return v.showAnswers
}

// Check grades one question while answers are shown. Only mcq and
// true/false are graded, by case-insensitive comparison; short answers are
// always Unknown.
func (v *Viewer) Check(id ID) Correctness {
	if !v.showAnswers {
		return Unknown
	}
	q, ok := v.quiz.Question(id)
	if !ok || !q.Type.Objective() {
		return Unknown
	}
	answer := v.answers[id]
	if answer == "" {
		return Unknown
	}
	if strings.EqualFold(answer, strings.TrimSpace(q.CorrectAnswer)) {
		return Correct
	}
	return Incorrect
}

// Score counts correct answers among the objective questions.
func (v *Viewer) Score() (correct, objective int) {
	for _, q := range v.quiz.Questions {
		if !q.Type.Objective() {
			continue
		}
		objective++
		if v.Check(q.ID) == Correct {
			correct++
		}
	}
	return correct, objective
}

func (v *Viewer) ExportFilename() string {
	return fmt.Sprintf("quiz_%s.pdf", v.quiz.ID)
}

// Export downloads the PDF into dir as quiz_<id>.pdf and returns its path.
// A failed download leaves no partial file behind.
func (v *Viewer) Export(ctx context.Context, includeAnswers bool, dir string) (string, error) {
	log := config.WithContext(ctx).
		WithField("quiz_id", string(v.quiz.ID)).
		WithField("include_answers", includeAnswers)

	fail := func(err error) (string, error) {
		log.WithError(err).Error("pdf export failed")
		return "", apperr.Resolved(err, ExportFailedMessage)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail(err)
	}
	tmp, err := os.CreateTemp(dir, ".quiz-*.pdf.part")
	if err != nil {
		return fail(err)
	}
	defer os.Remove(tmp.Name())

	n, err := v.exporter.ExportPDF(ctx, ExportRequest{QuizID: v.quiz.ID, IncludeAnswers: includeAnswers}, tmp)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fail(err)
	}

	path := filepath.Join(dir, v.ExportFilename())
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fail(err)
	}

	log.WithField("bytes", n).WithField("path", path).Info("pdf exported")
	return path, nil
}

func letters(options []string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, OptionLetter(o))
	}
	return out
}

func hasLetter(options []string, answer string) bool {
	for _, l := range letters(options) {
		if strings.EqualFold(l, answer) {
			return true
		}
	}
	return false
}
