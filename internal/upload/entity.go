package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
)

// AudioHandle is the server's reference to an uploaded file.
type AudioHandle struct {
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	Size             int64  `json:"size,omitempty"`
	Type             string `json:"type,omitempty"`
}

// DisplayName prefers the name the user uploaded.
func (h AudioHandle) DisplayName() string {
	if h.OriginalFilename != "" {
		return h.OriginalFilename
	}
	return h.Filename
}

type uploadResponse struct {
	apiclient.Envelope
	AudioHandle
}

// Candidate is a file the user picked but has not uploaded yet.
type Candidate struct {
	Name string
	Size int64
	Type string

	open func() (io.ReadCloser, error)
}

func NewCandidate(name string, size int64, mimeType string, open func() (io.ReadCloser, error)) *Candidate {
	return &Candidate{Name: name, Size: size, Type: mimeType, open: open}
}

// CandidateFromFile stats path and sniffs its content type.
func CandidateFromFile(path string) (*Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	var mimeType string
	if mt, err := mimetype.DetectFile(path); err == nil {
		mimeType, _, _ = strings.Cut(mt.String(), ";")
	}

	return NewCandidate(filepath.Base(path), info.Size(), mimeType, func() (io.ReadCloser, error) {
		return os.Open(path)
	}), nil
}

func (c *Candidate) Open() (io.ReadCloser, error) {
	if c.open == nil {
		return nil, fmt.Errorf("candidate %s has no content", c.Name)
	}
	return c.open()
}
