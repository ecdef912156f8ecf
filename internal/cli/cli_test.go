package cli_test

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/voicequiz/internal/apitest"
	"github.com/saulo-duarte/voicequiz/internal/cli"
)

func newAPI(t *testing.T) *apitest.Server {
	t.Helper()
	t.Setenv("VOICEQUIZ_STATE_DIR", t.TempDir())
	t.Setenv("VOICEQUIZ_CRYPTO_KEY", "")

	srv := apitest.NewServer(t)
	srv.Router.Post("/auth/login", apitest.Reply(http.StatusOK, map[string]any{
		"success": true,
		"token":   "T",
		"user":    map[string]any{"id": "u1", "username": "a", "email": "a@b.com"},
	}))
	srv.Router.Get("/history", apitest.Reply(http.StatusOK, map[string]any{
		"success": true,
		"quizzes": []map[string]any{
			{"_id": "q1", "audio_filename": "bio.mp3", "difficulty": "medium", "question_count": 10, "created_at": "2025-03-04T10:30:00Z"},
		},
	}))
	srv.Router.Get("/statistics", apitest.Reply(http.StatusOK, map[string]any{
		"success":    true,
		"statistics": map[string]any{"total_quizzes": 1, "completed_quizzes": 0, "average_score": 0},
	}))
	return srv
}

func run(t *testing.T, srv *apitest.Server, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(append(args, "--api-url", srv.URL))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func login(t *testing.T, srv *apitest.Server) {
	t.Helper()
	_, err := run(t, srv, "", "login", "--email", "a@b.com", "--password", "secret")
	require.NoError(t, err)
}

func TestLoginOpensDashboard(t *testing.T) {
	srv := newAPI(t)

	out, err := run(t, srv, "a@b.com\nsecret\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Please wait...")
	assert.Contains(t, out, "Welcome, a!")
	assert.Contains(t, out, "[q1] bio.mp3")

	var body map[string]any
	srv.Requests()[0].Decode(t, &body)
	assert.Equal(t, map[string]any{"email": "a@b.com", "password": "secret"}, body)

	out, err = run(t, srv, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Username: a")
}

func TestLoginValidationMakesNoCall(t *testing.T) {
	srv := newAPI(t)

	_, err := run(t, srv, "", "login", "--email", "a@b.com", "--password", "123")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 6 characters.", cli.Message(err))
	assert.Zero(t, srv.Count())
}

func TestLogoutIsIdempotent(t *testing.T) {
	srv := newAPI(t)
	login(t, srv)

	for i := 0; i < 2; i++ {
		out, err := run(t, srv, "", "logout")
		require.NoError(t, err)
		assert.Contains(t, out, "Logged out.")
	}

	out, err := run(t, srv, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in.")

	_, err = run(t, srv, "", "dashboard")
	assert.Error(t, err)
}

func TestDeleteAsksFirst(t *testing.T) {
	srv := newAPI(t)
	srv.Router.Delete("/quiz/{id}", apitest.Reply(http.StatusOK, map[string]any{"success": true}))
	login(t, srv)

	out, err := run(t, srv, "n\n", "delete", "q1")
	require.NoError(t, err)
	assert.Contains(t, out, "Are you sure you want to delete this quiz?")
	assert.Contains(t, out, "Cancelled.")
	for _, r := range srv.Requests() {
		assert.NotEqual(t, http.MethodDelete, r.Method)
	}

	out, err = run(t, srv, "", "delete", "q1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Quiz deleted.")
	assert.Equal(t, "/quiz/q1", srv.Last(t).Path)
}

func TestNewQuizEndToEnd(t *testing.T) {
	srv := newAPI(t)
	srv.Router.Post("/upload", apitest.Reply(http.StatusOK, map[string]any{
		"success": true, "filename": "20250304_lecture.mp3", "original_filename": "lecture.mp3",
	}))
	srv.Router.Post("/transcribe", apitest.Reply(http.StatusOK, map[string]any{
		"success": true, "text": "Mitochondria produce ATP. Plants have cell walls.", "word_count": 7, "duration": 65,
	}))
	srv.Router.Post("/generate-quiz", apitest.Reply(http.StatusOK, map[string]any{
		"success": true,
		"quiz_id": "665f1c",
		"method":  "local",
		"quiz": map[string]any{
			"title": "Cells", "difficulty": "medium", "total_questions": 2,
			"questions": []map[string]any{
				{"id": 1, "type": "mcq", "question": "Powerhouse?", "options": []string{"A) Nucleus", "B) Mitochondria"}, "correct_answer": "B"},
				{"id": 2, "type": "true_false", "question": "Plants have cell walls.", "correct_answer": "True"},
			},
		},
	}))
	srv.Router.Post("/export-pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	})
	login(t, srv)

	dir := t.TempDir()
	audio := filepath.Join(dir, "lecture.mp3")
	require.NoError(t, os.WriteFile(audio, append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), make([]byte, 64)...), 0o600))

	stdin := strings.Join([]string{
		"y",    // transcript looks good
		"b",    // Q1
		"true", // Q2
		"s",    // show answers
		"a",    // export with answers
		"q",
	}, "\n") + "\n"

	out, err := run(t, srv, stdin, "new", audio, "--questions", "7", "--types", "mcq,true_false", "--export-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "File Name: lecture.mp3")
	assert.Contains(t, out, "Audio Duration: 1:05 minutes")
	assert.Contains(t, out, "using Local AI model")
	assert.Contains(t, out, "Correct Answer: B  Correct!")
	assert.Contains(t, out, "Score: 2/2 objective questions correct")

	pdf, err := os.ReadFile(filepath.Join(dir, "quiz_665f1c.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(pdf))

	var gen map[string]any
	for _, r := range srv.Requests() {
		if r.Path == "/generate-quiz" {
			r.Decode(t, &gen)
		}
	}
	require.NotNil(t, gen)
	assert.Equal(t, float64(7), gen["num_questions"])
	assert.Equal(t, "lecture.mp3", gen["filename"])
	assert.Equal(t, []any{"mcq", "true_false"}, gen["question_types"])

	last := srv.Last(t)
	assert.Equal(t, "/export-pdf", last.Path)
	assert.JSONEq(t, `{"quiz_id":"665f1c","include_answers":true}`, string(last.Body))
}

func TestNewQuizRejectsLargeFileBeforeUpload(t *testing.T) {
	srv := newAPI(t)
	login(t, srv)
	before := srv.Count()

	dir := t.TempDir()
	big := filepath.Join(dir, "lecture.mp3")
	f, err := os.Create(big)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(60 << 20))
	require.NoError(t, f.Close())

	out, err := run(t, srv, "", "new", big)
	require.NoError(t, err)
	assert.Contains(t, out, "Error: File too large. Maximum size is 50MB.")
	assert.Contains(t, out, "Back to dashboard.")
	assert.Equal(t, before, srv.Count())
}
