package generate

import (
	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/quiz"
)

type Request struct {
	TranscriptText string              `json:"transcript_text" validate:"required"`
	Filename       string              `json:"filename"`
	Difficulty     string              `json:"difficulty" validate:"oneof=easy medium hard"`
	NumQuestions   int                 `json:"num_questions" validate:"min=1,max=50"`
	QuestionTypes  []quiz.QuestionType `json:"question_types" validate:"min=1,dive,oneof=mcq true_false short_answer"`
}

type Result struct {
	QuizID quiz.ID   `json:"quiz_id"`
	Quiz   quiz.Quiz `json:"quiz"`
	Method string    `json:"method"`
}

type generateResponse struct {
	apiclient.Envelope
	Result
}
