package quiz

import "github.com/saulo-duarte/voicequiz/internal/apiclient"

type QuizContainer struct {
	Exporter Exporter
}

func NewQuizContainer(client *apiclient.Client) *QuizContainer {
	return &QuizContainer{
		Exporter: NewExporter(client),
	}
}

// NewViewer opens a fresh take-and-export step for q.
func (c *QuizContainer) NewViewer(q *Quiz, method string) *Viewer {
	return NewViewer(q, method, c.Exporter)
}
