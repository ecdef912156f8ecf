package container

import (
	"path/filepath"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/app"
	"github.com/saulo-duarte/voicequiz/internal/auth"
	"github.com/saulo-duarte/voicequiz/internal/config"
	"github.com/saulo-duarte/voicequiz/internal/dashboard"
	"github.com/saulo-duarte/voicequiz/internal/generate"
	"github.com/saulo-duarte/voicequiz/internal/quiz"
	"github.com/saulo-duarte/voicequiz/internal/session"
	"github.com/saulo-duarte/voicequiz/internal/transcribe"
	"github.com/saulo-duarte/voicequiz/internal/upload"
)

type Container struct {
	Config        *config.Config
	Client        *apiclient.Client
	Store         *session.Store
	App           *app.App
	AuthContainer *auth.AuthContainer
}

// Features holds everything that talks to the API with a bearer token.
type Features struct {
	DashboardContainer  *dashboard.DashboardContainer
	UploadContainer     *upload.UploadContainer
	TranscribeContainer *transcribe.TranscribeContainer
	GenerateContainer   *generate.GenerateContainer
	QuizContainer       *quiz.QuizContainer
}

func New(cfg *config.Config) (*Container, error) {
	// Left as a nil interface when no key is configured; a typed nil
	// *config.Cipher would look like a sealer to the store.
	var sealer session.Sealer
	if cfg.CryptoKey != "" {
		cipher, err := config.NewCipher(cfg.CryptoKey)
		if err != nil {
			return nil, err
		}
		sealer = cipher
	}

	storage := session.NewFileStorage(filepath.Join(cfg.StateDir, "session"))
	store := session.NewStore(storage, sealer)
	client := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout)

	return &Container{
		Config:        cfg,
		Client:        client,
		Store:         store,
		App:           app.New(store),
		AuthContainer: auth.NewAuthContainer(client, store),
	}, nil
}

func (c *Container) Authorized(token string) *Features {
	client := c.Client.WithToken(token)

	return &Features{
		DashboardContainer:  dashboard.NewDashboardContainer(client),
		UploadContainer:     upload.NewUploadContainer(client),
		TranscribeContainer: transcribe.NewTranscribeContainer(client, c.Config.Transcribe.Language),
		GenerateContainer:   generate.NewGenerateContainer(client),
		QuizContainer:       quiz.NewQuizContainer(client),
	}
}
