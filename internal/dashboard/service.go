package dashboard

import (
	"context"
	"net/http"
	"net/url"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/quiz"
)

type Service interface {
	History(ctx context.Context) ([]HistoryEntry, error)
	Statistics(ctx context.Context) (*Statistics, error)
	DeleteQuiz(ctx context.Context, id quiz.ID) error
}

type service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) Service {
	return &service{client: client}
}

func (s *service) History(ctx context.Context) ([]HistoryEntry, error) {
	var resp historyResponse
	if err := s.client.JSON(ctx, http.MethodGet, "/history", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Quizzes, nil
}

func (s *service) Statistics(ctx context.Context) (*Statistics, error) {
	var resp statisticsResponse
	if err := s.client.JSON(ctx, http.MethodGet, "/statistics", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Statistics, nil
}

func (s *service) DeleteQuiz(ctx context.Context, id quiz.ID) error {
	return s.client.JSON(ctx, http.MethodDelete, "/quiz/"+url.PathEscape(string(id)), nil, nil)
}
