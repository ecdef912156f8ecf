package quiz

import (
	"context"
	"io"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
)

type ExportRequest struct {
	QuizID         ID   `json:"quiz_id"`
	IncludeAnswers bool `json:"include_answers"`
}

// Exporter renders a quiz to PDF on the server. Only the quiz id and the
// answers flag are sent; the user's own answers never leave the client.
type Exporter interface {
	ExportPDF(ctx context.Context, req ExportRequest, w io.Writer) (int64, error)
}

type exporter struct {
	client *apiclient.Client
}

func NewExporter(client *apiclient.Client) Exporter {
	return &exporter{client: client}
}

func (e *exporter) ExportPDF(ctx context.Context, req ExportRequest, w io.Writer) (int64, error) {
	return e.client.Download(ctx, "/export-pdf", req, w)
}
