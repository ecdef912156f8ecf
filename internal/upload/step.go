package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/config"
	util "github.com/saulo-duarte/voicequiz/internal/utils"
)

const (
	DeclinedMessage = "Upload failed"
	FailedMessage   = "Failed to upload audio file"
)

// Step holds the selected file until it is uploaded. A failed upload keeps
// the selection so the user can try again.
type Step struct {
	service  Service
	selected *Candidate
}

func NewStep(s Service) *Step {
	return &Step{service: s}
}

func (s *Step) Selected() *Candidate {
	return s.selected
}

// Select validates c and keeps it on success. A rejected file leaves the
// previous selection in place.
func (s *Step) Select(c *Candidate) error {
	if err := Validate(c); err != nil {
		return err
	}
	s.selected = c
	return nil
}

// Upload sends the selected file. Nothing reaches the network when no file
// is selected.
func (s *Step) Upload(ctx context.Context) (*AudioHandle, error) {
	if s.selected == nil {
		return nil, apperr.Validation(NoFileMessage)
	}
	c := s.selected
	log := config.WithContext(ctx).WithField("file", c.Name).WithField("size", c.Size)

	rc, err := c.Open()
	if err != nil {
		log.WithError(err).Error("failed to open audio file")
		return nil, apperr.Resolved(err, FailedMessage)
	}
	defer rc.Close()

	handle, err := s.service.Upload(ctx, c.Name, c.Type, rc)
	if err != nil {
		log.WithError(err).Warn("upload failed")
		return nil, apperr.Resolved(err, apperr.StepMessage(err, DeclinedMessage, FailedMessage))
	}

	log.WithField("filename", handle.Filename).Info("audio uploaded")
	return handle, nil
}

// Summary prints what is about to be uploaded.
func (s *Step) Summary(w io.Writer) {
	if s.selected == nil {
		fmt.Fprintln(w, "No file selected. Supported formats: MP3, WAV, M4A, OGG (Max: 50MB)")
		return
	}
	c := s.selected
	typ := c.Type
	if typ == "" {
		typ = "Unknown"
	}
	fmt.Fprintf(w, "File Name: %s\n", c.Name)
	fmt.Fprintf(w, "File Size: %s\n", util.FormatMegabytes(c.Size))
	fmt.Fprintf(w, "File Type: %s\n", typ)
}
