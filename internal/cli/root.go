// Package cli is the terminal front end: a cobra command tree over the app
// shell and the wizard steps.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/config"
	"github.com/saulo-duarte/voicequiz/internal/container"
	"github.com/saulo-duarte/voicequiz/internal/session"
)

const genericMessage = "Something went wrong. See the log for details."

type runtime struct {
	in  io.Reader
	out io.Writer

	configPath string
	apiURL     string
	logLevel   string

	c      *container.Container
	prompt *Prompter
}

func NewRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	rt := &runtime{in: in, out: out}

	cmd := &cobra.Command{
		Use:           "voicequiz",
		Short:         "Turn lecture audio into quizzes",
		Long:          "Upload a lecture recording, review its transcript, generate a quiz, take it and export it as PDF.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init()
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&rt.configPath, "config", "", "Path to a config.yaml (default <state_dir>/config.yaml)")
	cmd.PersistentFlags().StringVar(&rt.apiURL, "api-url", "", "API base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&rt.logLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.AddCommand(
		rt.newLoginCmd(),
		rt.newSignupCmd(),
		rt.newLogoutCmd(),
		rt.newWhoamiCmd(),
		rt.newDashboardCmd(),
		rt.newDeleteCmd(),
		rt.newQuizCmd(),
	)
	return cmd
}

func (rt *runtime) init() error {
	cfg, err := config.Load(rt.configPath)
	if err != nil {
		return err
	}
	if rt.apiURL != "" {
		cfg.API.BaseURL = strings.TrimRight(rt.apiURL, "/")
	}
	if rt.logLevel != "" {
		cfg.Log.Level = rt.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.InitLogger(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	rt.c, err = container.New(cfg)
	if err != nil {
		return err
	}
	rt.prompt = NewPrompter(rt.in, rt.out)
	rt.c.App.Start()
	return nil
}

// requireSession returns the restored session or tells the user to log in.
func (rt *runtime) requireSession() (*session.Session, error) {
	sess, ok := rt.c.App.Session()
	if !ok {
		return nil, errors.New("you are not logged in; run `voicequiz login` first")
	}
	return sess, nil
}

func (rt *runtime) printf(format string, args ...any) {
	fmt.Fprintf(rt.out, format, args...)
}

// Message is what the terminal shows for err. Transport details only go to
// the log.
func Message(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) {
		return apperr.UserMessage(err, genericMessage)
	}
	return err.Error()
}

// Execute runs the command tree on the process stdio and returns the exit
// code.
func Execute() int {
	cmd := NewRootCmd(os.Stdin, os.Stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", Message(err))
		return 1
	}
	return 0
}
