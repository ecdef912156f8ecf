package upload

import (
	"context"
	"io"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
)

const FormField = "audio"

type Service interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (*AudioHandle, error)
}

type service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) Service {
	return &service{client: client}
}

func (s *service) Upload(ctx context.Context, name, contentType string, r io.Reader) (*AudioHandle, error) {
	var resp uploadResponse
	if err := s.client.Multipart(ctx, "/upload", FormField, name, contentType, r, &resp); err != nil {
		return nil, err
	}
	return &resp.AudioHandle, nil
}
