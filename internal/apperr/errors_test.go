package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
)

func TestUserMessage(t *testing.T) {
	const fallback = "Upload failed"

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", apperr.Validation("File too large. Maximum size is 50MB."), "File too large. Maximum size is 50MB."},
		{"server with message", apperr.Server(400, "Unsupported codec"), "Unsupported codec"},
		{"server without message", apperr.Server(500, ""), fallback},
		{"transport", apperr.Transport(errors.New("connection refused")), fallback},
		{"wrapped server", fmt.Errorf("upload: %w", apperr.Server(422, "Bad file")), "Bad file"},
		{"plain error", errors.New("boom"), fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.UserMessage(tt.err, fallback))
		})
	}
}

func TestIsKindAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("history: %w", apperr.Transport(cause))

	assert.True(t, apperr.IsKind(err, apperr.KindTransport))
	assert.False(t, apperr.IsKind(err, apperr.KindServer))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "transport error")
}

func TestStepMessage(t *testing.T) {
	const declined, failed = "Upload failed", "Failed to upload audio file"

	assert.Equal(t, declined, apperr.StepMessage(apperr.Server(200, ""), declined, failed))
	assert.Equal(t, "Quota exceeded", apperr.StepMessage(apperr.Server(200, "Quota exceeded"), declined, failed))
	assert.Equal(t, failed, apperr.StepMessage(apperr.Server(502, ""), declined, failed))
	assert.Equal(t, "Bad file", apperr.StepMessage(apperr.Server(400, "Bad file"), declined, failed))
	assert.Equal(t, failed, apperr.StepMessage(apperr.Transport(errors.New("eof")), declined, failed))
	assert.True(t, apperr.Declined(apperr.Server(201, "")))
	assert.False(t, apperr.Declined(apperr.Validation("x")))
}

func TestResolvedKeepsKind(t *testing.T) {
	err := apperr.Resolved(apperr.Server(200, ""), "Upload failed")
	assert.True(t, apperr.IsKind(err, apperr.KindServer))
	assert.True(t, apperr.Declined(err))
	assert.Equal(t, "Upload failed", apperr.UserMessage(err, "other"))

	plain := apperr.Resolved(errors.New("open: no such file"), "Failed to upload audio file")
	assert.True(t, apperr.IsKind(plain, apperr.KindTransport))
	assert.Equal(t, "Failed to upload audio file", apperr.UserMessage(plain, "other"))
}
