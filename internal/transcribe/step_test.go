package transcribe_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/apitest"
	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/transcribe"
	"github.com/saulo-duarte/voicequiz/internal/upload"
)

var handle = upload.AudioHandle{Filename: "20250304_lecture.mp3", OriginalFilename: "lecture.mp3"}

func newStep(t *testing.T, h http.HandlerFunc) (*transcribe.Step, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(t)
	srv.Router.Post("/transcribe", h)
	c := transcribe.NewTranscribeContainer(apiclient.New(srv.URL, time.Second).WithToken("T"), "en")
	return c.NewStep(handle), srv
}

func TestEnterFiresOnce(t *testing.T) {
	step, srv := newStep(t, apitest.Reply(http.StatusOK, map[string]any{
		"success":    true,
		"text":       "Mitochondria produce ATP.",
		"word_count": 3,
		"language":   "en",
		"duration":   125.4,
	}))

	_, err := step.Confirm()
	assert.ErrorIs(t, err, transcribe.ErrNotReady)

	tr, err := step.Enter(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mitochondria produce ATP.", tr.Text)
	assert.Equal(t, 3, tr.WordCount)
	require.NotNil(t, tr.Duration)

	_, err = step.Enter(context.Background())
	assert.ErrorIs(t, err, transcribe.ErrAlreadyEntered)
	assert.Equal(t, 1, srv.Count())

	var body transcribe.Request
	srv.Last(t).Decode(t, &body)
	assert.Equal(t, transcribe.Request{Filename: "20250304_lecture.mp3", Language: "en"}, body)
	assert.Equal(t, "Bearer T", srv.Last(t).Authorization)

	confirmed, err := step.Confirm()
	require.NoError(t, err)
	assert.Same(t, tr, confirmed)
}

func TestEnterFailureDoesNotRetry(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   map[string]any
		want   string
	}{
		{"declined", http.StatusOK, map[string]any{"success": false}, transcribe.DeclinedMessage},
		{"server message", http.StatusInternalServerError, map[string]any{"error": "Whisper model not loaded"}, "Whisper model not loaded"},
		{"bare failure", http.StatusBadGateway, map[string]any{}, transcribe.FailedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, srv := newStep(t, apitest.Reply(tt.status, tt.body))

			_, err := step.Enter(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.want, apperr.UserMessage(err, "unexpected"))

			_, err = step.Enter(context.Background())
			assert.ErrorIs(t, err, transcribe.ErrAlreadyEntered)
			assert.Equal(t, 1, srv.Count())

			_, err = step.Confirm()
			assert.ErrorIs(t, err, transcribe.ErrNotReady)
		})
	}
}

func TestSummary(t *testing.T) {
	step, _ := newStep(t, apitest.Reply(http.StatusOK, map[string]any{
		"success": true, "text": "Hello class.", "word_count": 2, "duration": 65,
	}))
	_, err := step.Enter(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	step.Summary(&buf)
	out := buf.String()
	assert.Contains(t, out, "Language Detected: English")
	assert.Contains(t, out, "Word Count: 2")
	assert.Contains(t, out, "Audio Duration: 1:05 minutes")
	assert.Contains(t, out, "Hello class.")
}
