package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/voicequiz/internal/dashboard"
	"github.com/saulo-duarte/voicequiz/internal/quiz"
)

func (rt *runtime) newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show statistics and recent quizzes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.showDashboard(cmd.Context())
		},
	}
}

func (rt *runtime) loadDashboard(ctx context.Context) (*dashboard.Dashboard, error) {
	sess, err := rt.requireSession()
	if err != nil {
		return nil, err
	}
	d := rt.c.Authorized(sess.Token).DashboardContainer.NewDashboard(sess.User)
	d.Load(ctx)
	return d, nil
}

func (rt *runtime) showDashboard(ctx context.Context) error {
	d, err := rt.loadDashboard(ctx)
	if err != nil {
		return err
	}
	d.Render(rt.out, time.Local)
	return nil
}

func (rt *runtime) newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <quiz-id>",
		Short: "Delete a quiz from your history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := rt.loadDashboard(cmd.Context())
			if err != nil {
				return err
			}

			var confirmer dashboard.Confirmer = rt.prompt
			if yes {
				confirmer = dashboard.ConfirmFunc(func(string) (bool, error) { return true, nil })
			}

			deleted, err := d.Delete(cmd.Context(), quiz.ID(args[0]), confirmer)
			if err != nil {
				return err
			}
			if deleted {
				rt.printf("Quiz deleted.\n")
			} else {
				rt.printf("Cancelled.\n")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
