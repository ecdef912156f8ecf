package upload

import "github.com/saulo-duarte/voicequiz/internal/apiclient"

type UploadContainer struct {
	Service Service
}

func NewUploadContainer(client *apiclient.Client) *UploadContainer {
	return &UploadContainer{
		Service: NewService(client),
	}
}

func (c *UploadContainer) NewStep() *Step {
	return NewStep(c.Service)
}
