package transcribe

import "github.com/saulo-duarte/voicequiz/internal/apiclient"

type Request struct {
	Filename string `json:"filename"`
	Language string `json:"language"`
}

type Transcript struct {
	Text      string   `json:"text"`
	WordCount int      `json:"word_count"`
	Language  string   `json:"language,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
}

type transcribeResponse struct {
	apiclient.Envelope
	Transcript
}
