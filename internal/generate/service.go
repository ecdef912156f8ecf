package generate

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
)

type Service interface {
	Generate(ctx context.Context, req *Request) (*Result, error)
}

type service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) Service {
	return &service{client: client}
}

func (s *service) Generate(ctx context.Context, req *Request) (*Result, error) {
	var resp generateResponse
	if err := s.client.JSON(ctx, http.MethodPost, "/generate-quiz", req, &resp); err != nil {
		return nil, err
	}
	if resp.Quiz.ID == "" {
		resp.Quiz.ID = resp.QuizID
	}
	return &resp.Result, nil
}
