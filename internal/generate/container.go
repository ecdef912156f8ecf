package generate

import (
	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/transcribe"
	"github.com/saulo-duarte/voicequiz/internal/upload"
)

type GenerateContainer struct {
	Service Service
}

func NewGenerateContainer(client *apiclient.Client) *GenerateContainer {
	return &GenerateContainer{
		Service: NewService(client),
	}
}

func (c *GenerateContainer) NewStep(handle upload.AudioHandle, transcript transcribe.Transcript) *Step {
	return NewStep(c.Service, handle, transcript)
}
