package transcribe

import (
	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/upload"
)

type TranscribeContainer struct {
	Service  Service
	Language string
}

func NewTranscribeContainer(client *apiclient.Client, language string) *TranscribeContainer {
	return &TranscribeContainer{
		Service:  NewService(client),
		Language: language,
	}
}

func (c *TranscribeContainer) NewStep(handle upload.AudioHandle) *Step {
	return NewStep(c.Service, handle, c.Language)
}
