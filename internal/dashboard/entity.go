package dashboard

import (
	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/quiz"
	util "github.com/saulo-duarte/voicequiz/internal/utils"
)

type HistoryEntry struct {
	ID            quiz.ID        `json:"_id"`
	AudioFilename string         `json:"audio_filename"`
	Difficulty    string         `json:"difficulty"`
	QuestionCount int            `json:"question_count"`
	Completed     bool           `json:"completed"`
	Score         *float64       `json:"score"`
	CreatedAt     util.Timestamp `json:"created_at"`
}

type Statistics struct {
	TotalQuizzes     int     `json:"total_quizzes"`
	CompletedQuizzes int     `json:"completed_quizzes"`
	AverageScore     float64 `json:"average_score"`
}

type historyResponse struct {
	apiclient.Envelope
	Quizzes []HistoryEntry `json:"quizzes"`
}

type statisticsResponse struct {
	apiclient.Envelope
	Statistics Statistics `json:"statistics"`
}
