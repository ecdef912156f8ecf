package transcribe

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
)

type Service interface {
	Transcribe(ctx context.Context, req Request) (*Transcript, error)
}

type service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) Service {
	return &service{client: client}
}

func (s *service) Transcribe(ctx context.Context, req Request) (*Transcript, error) {
	var resp transcribeResponse
	if err := s.client.JSON(ctx, http.MethodPost, "/transcribe", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Transcript, nil
}
