package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

func (d *Dashboard) Render(w io.Writer, loc *time.Location) {
	fmt.Fprintf(w, "Welcome, %s!\n", d.user.Username)

	if s := d.statistics; s != nil {
		fmt.Fprintf(w, "\nTotal Quizzes: %d   Completed: %d   Average Score: %s%%\n",
			s.TotalQuizzes, s.CompletedQuizzes, formatScore(s.AverageScore))
	}

	fmt.Fprintln(w, "\nRecent Quizzes")
	if len(d.history) == 0 {
		fmt.Fprintln(w, "No quizzes yet")
		fmt.Fprintln(w, "Create your first quiz by uploading an audio file!")
		return
	}
	for _, e := range d.history {
		line := fmt.Sprintf("  [%s] %s  %s  %d questions", e.ID, e.AudioFilename, e.Difficulty, e.QuestionCount)
		if e.Completed && e.Score != nil {
			line += fmt.Sprintf("  Score: %s%%", formatScore(*e.Score))
		}
		fmt.Fprintf(w, "%s  %s\n", line, e.CreatedAt.Display(loc))
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
