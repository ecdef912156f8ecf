package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/voicequiz/internal/auth"
)

func (rt *runtime) newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and open the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := auth.NewForm()
			return rt.submit(cmd, form, "", email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted without echo when omitted)")
	return cmd
}

func (rt *runtime) newSignupCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and open the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := auth.NewForm()
			form.Toggle()
			return rt.submit(cmd, form, username, email, password)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted without echo when omitted)")
	return cmd
}

// submit fills the missing fields from the prompter and makes one auth call.
func (rt *runtime) submit(cmd *cobra.Command, form *auth.Form, username, email, password string) error {
	var err error
	if form.Mode == auth.ModeSignup {
		if username == "" {
			if username, err = rt.prompt.Line("Username", ""); err != nil {
				return err
			}
		}
		form.Set(auth.FieldUsername, username)
	}
	if email == "" {
		if email, err = rt.prompt.Line("Email", ""); err != nil {
			return err
		}
	}
	form.Set(auth.FieldEmail, email)
	if password == "" {
		if password, err = rt.prompt.Password("Password"); err != nil {
			return err
		}
	}
	form.Set(auth.FieldPassword, password)

	rt.printf("Please wait...\n")
	if _, err := rt.c.AuthContainer.Handler.Submit(cmd.Context(), form); err != nil {
		return errors.New(form.Err)
	}
	if err := rt.c.App.AuthSucceeded(); err != nil {
		return err
	}
	return rt.showDashboard(cmd.Context())
}

func (rt *runtime) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.c.App.Logout(); err != nil {
				return err
			}
			rt.printf("Logged out.\n")
			return nil
		},
	}
}

func (rt *runtime) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := rt.c.App.Session()
			if !ok {
				rt.printf("Not logged in.\n")
				return nil
			}
			rt.printf("Username: %s\n", sess.User.Username)
			if sess.User.Email != "" {
				rt.printf("Email: %s\n", sess.User.Email)
			}
			if info, ok := auth.DescribeToken(sess.Token); ok && info.ExpiresAt != nil {
				state := "valid"
				if info.ExpiresAt.Before(time.Now()) {
					state = "expired"
				}
				rt.printf("Token expires: %s (%s)\n", info.ExpiresAt.Local().Format(time.RFC1123), state)
			}
			return nil
		},
	}
}
