package auth_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/apitest"
	"github.com/saulo-duarte/voicequiz/internal/auth"
	"github.com/saulo-duarte/voicequiz/internal/session"
	util "github.com/saulo-duarte/voicequiz/internal/utils"
)

func newHandler(t *testing.T) (*apitest.Server, *auth.Handler, *session.Store) {
	t.Helper()
	srv := apitest.NewServer(t)
	store := session.NewStore(session.NewMemoryStorage(), nil)
	c := auth.NewAuthContainer(apiclient.New(srv.URL, time.Second), store)
	return srv, c.Handler, store
}

func TestSubmitLogin(t *testing.T) {
	srv, h, store := newHandler(t)
	srv.Router.Post("/auth/login", apitest.Reply(http.StatusOK, map[string]any{
		"success": true,
		"token":   "T",
		"user":    map[string]any{"username": "a"},
	}))

	form := auth.NewForm()
	form.Set(auth.FieldEmail, "a@b.com")
	form.Set(auth.FieldPassword, "secret")

	sess, err := h.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "T", sess.Token)
	assert.Equal(t, "a", sess.User.Username)
	assert.Empty(t, form.Err)

	req := srv.Last(t)
	assert.Empty(t, req.Authorization)
	assert.JSONEq(t, `{"email":"a@b.com","password":"secret"}`, string(req.Body))

	restored, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, sess, restored)
}

func TestSubmitLoginWithNumericUserID(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Router.Post("/auth/login", apitest.Reply(http.StatusOK, map[string]any{
		"success": true,
		"token":   "T",
		"user":    map[string]any{"id": 1, "username": "a"},
	}))

	storage := session.NewFileStorage(t.TempDir())
	h := auth.NewAuthContainer(apiclient.New(srv.URL, time.Second), session.NewStore(storage, nil)).Handler

	form := auth.NewForm()
	form.Set(auth.FieldEmail, "a@b.com")
	form.Set(auth.FieldPassword, "secret")

	sess, err := h.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Empty(t, form.Err)
	assert.Equal(t, util.ID("1"), sess.User.ID)

	restored, ok := session.NewStore(storage, nil).Restore()
	require.True(t, ok)
	assert.Equal(t, *sess, *restored)
}

func TestSubmitSignupSendsExactlyThreeFields(t *testing.T) {
	srv, h, _ := newHandler(t)
	srv.Router.Post("/auth/signup", apitest.Reply(http.StatusCreated, map[string]any{
		"success": true,
		"token":   "T2",
		"user":    map[string]any{"id": "u9", "username": "bob", "email": "bob@b.com"},
	}))

	form := auth.NewForm()
	form.Toggle()
	require.Equal(t, auth.ModeSignup, form.Mode)
	form.Set(auth.FieldUsername, "bob")
	form.Set(auth.FieldEmail, "bob@b.com")
	form.Set(auth.FieldPassword, "hunter22")

	sess, err := h.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, util.ID("u9"), sess.User.ID)

	req := srv.Last(t)
	assert.Equal(t, "/auth/signup", req.Path)
	assert.JSONEq(t, `{"username":"bob","email":"bob@b.com","password":"hunter22"}`, string(req.Body))
}

func TestSubmitValidationMakesNoCall(t *testing.T) {
	tests := []struct {
		name string
		fill func(*auth.Form)
		want string
	}{
		{"short password", func(f *auth.Form) {
			f.Set(auth.FieldEmail, "a@b.com")
			f.Set(auth.FieldPassword, "12345")
		}, "Password must be at least 6 characters."},
		{"missing email", func(f *auth.Form) {
			f.Set(auth.FieldPassword, "secret")
		}, "Email is required."},
		{"bad email", func(f *auth.Form) {
			f.Set(auth.FieldEmail, "not-an-email")
			f.Set(auth.FieldPassword, "secret")
		}, "Please enter a valid email address."},
		{"signup without username", func(f *auth.Form) {
			f.Toggle()
			f.Set(auth.FieldEmail, "a@b.com")
			f.Set(auth.FieldPassword, "secret")
		}, "Username is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, h, store := newHandler(t)
			form := auth.NewForm()
			tt.fill(form)

			_, err := h.Submit(context.Background(), form)
			require.Error(t, err)
			assert.Equal(t, tt.want, form.Err)
			assert.Zero(t, srv.Count())
			_, ok := store.Current()
			assert.False(t, ok)
		})
	}
}

func TestSubmitFailureMessages(t *testing.T) {
	t.Run("ServerMessage", func(t *testing.T) {
		srv, h, store := newHandler(t)
		srv.Router.Post("/auth/login", apitest.Reply(http.StatusUnauthorized, map[string]any{
			"success": false, "error": "Invalid email or password",
		}))

		form := auth.NewForm()
		form.Set(auth.FieldEmail, "a@b.com")
		form.Set(auth.FieldPassword, "secret")

		_, err := h.Submit(context.Background(), form)
		require.Error(t, err)
		assert.Equal(t, "Invalid email or password", form.Err)
		_, ok := store.Current()
		assert.False(t, ok)
	})

	t.Run("GenericFallback", func(t *testing.T) {
		srv, h, _ := newHandler(t)
		srv.Router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		form := auth.NewForm()
		form.Set(auth.FieldEmail, "a@b.com")
		form.Set(auth.FieldPassword, "secret")

		_, err := h.Submit(context.Background(), form)
		require.Error(t, err)
		assert.Equal(t, auth.FallbackMessage, form.Err)
	})

	t.Run("SuccessWithoutToken", func(t *testing.T) {
		srv, h, store := newHandler(t)
		srv.Router.Post("/auth/login", apitest.Reply(http.StatusOK, map[string]any{"success": true}))

		form := auth.NewForm()
		form.Set(auth.FieldEmail, "a@b.com")
		form.Set(auth.FieldPassword, "secret")

		_, err := h.Submit(context.Background(), form)
		require.Error(t, err)
		assert.Equal(t, auth.FallbackMessage, form.Err)
		_, ok := store.Current()
		assert.False(t, ok)
	})
}

func TestFormEditsAndToggle(t *testing.T) {
	form := auth.NewForm()
	form.Set(auth.FieldEmail, "a@b.com")
	form.Err = "Invalid email or password"

	form.Set(auth.FieldPassword, "x")
	assert.Empty(t, form.Err, "any edit clears the error")

	form.Err = "stale"
	form.Toggle()
	assert.Equal(t, auth.ModeSignup, form.Mode)
	assert.Empty(t, form.Email)
	assert.Empty(t, form.Password)
	assert.Empty(t, form.Err)

	form.Toggle()
	assert.Equal(t, auth.ModeLogin, form.Mode)
}
