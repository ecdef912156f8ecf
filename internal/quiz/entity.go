package quiz

import (
	"strings"

	util "github.com/saulo-duarte/voicequiz/internal/utils"
)

type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeTrueFalse   QuestionType = "true_false"
	TypeShortAnswer QuestionType = "short_answer"
)

// AllTypes is the fixed order used for settings and requests.
var AllTypes = []QuestionType{TypeMCQ, TypeTrueFalse, TypeShortAnswer}

func (t QuestionType) Label() string {
	switch t {
	case TypeMCQ:
		return "Multiple Choice"
	case TypeTrueFalse:
		return "True/False"
	case TypeShortAnswer:
		return "Short Answer"
	default:
		return string(t)
	}
}

// Objective types can be graded by string comparison.
func (t QuestionType) Objective() bool {
	return t == TypeMCQ || t == TypeTrueFalse
}

// ID is the tolerant API id; quiz ids arrive as strings or numbers.
type ID = util.ID

type Question struct {
	ID            ID           `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation,omitempty"`
}

// OptionLetter is the answer value an mcq option stands for: its leading
// character, e.g. "B" for "B) Mitochondria".
func OptionLetter(option string) string {
	option = strings.TrimSpace(option)
	if option == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(option)[0]))
}

type Quiz struct {
	ID             ID         `json:"quiz_id,omitempty"`
	Title          string     `json:"title"`
	Difficulty     string     `json:"difficulty"`
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions"`
}

func (q *Quiz) Question(id ID) (*Question, bool) {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i], true
		}
	}
	return nil, false
}
