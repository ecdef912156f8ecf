package upload

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
)

const MaxSize = 50 * 1024 * 1024

const (
	InvalidTypeMessage = "Invalid file type. Please upload MP3, WAV, M4A, or OGG files."
	TooLargeMessage    = "File too large. Maximum size is 50MB."
	NoFileMessage      = "Please select a file first."
)

var (
	allowedTypes      = []string{"audio/mpeg", "audio/wav", "audio/mp3", "audio/x-m4a", "audio/ogg"}
	allowedExtensions = []string{".mp3", ".wav", ".m4a", ".ogg"}
)

// Validate accepts a file whose type or extension is allowed and whose size
// is at most MaxSize. The type check runs first.
func Validate(c *Candidate) error {
	if c == nil {
		return apperr.Validation(NoFileMessage)
	}
	ext := strings.ToLower(filepath.Ext(c.Name))
	if !slices.Contains(allowedTypes, c.Type) && !slices.Contains(allowedExtensions, ext) {
		return apperr.Validation(InvalidTypeMessage)
	}
	if c.Size > MaxSize {
		return apperr.Validation(TooLargeMessage)
	}
	return nil
}
