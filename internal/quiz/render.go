package quiz

import (
	"fmt"
	"io"
	"strings"
)

func MethodLabel(method string) string {
	if method == "openai" {
		return "OpenAI GPT"
	}
	return "Local AI"
}

func (v *Viewer) Render(w io.Writer) {
	q := v.quiz
	fmt.Fprintf(w, "Quiz generated successfully using %s model!\n", MethodLabel(v.method))
	fmt.Fprintf(w, "Quiz Title: %s\n", q.Title)
	fmt.Fprintf(w, "Difficulty: %s\n", q.Difficulty)
	fmt.Fprintf(w, "Total Questions: %d\n", q.TotalQuestions)

	for i, question := range q.Questions {
		fmt.Fprintln(w)
		v.renderQuestion(w, i+1, &question)
	}

	if v.showAnswers {
		correct, objective := v.Score()
		fmt.Fprintf(w, "\nScore: %d/%d objective questions correct\n", correct, objective)
	}
}

func (v *Viewer) renderQuestion(w io.Writer, n int, q *Question) {
	fmt.Fprintf(w, "Q%d. [%s] %s\n", n, q.Type.Label(), q.Question)

	answer := v.answers[q.ID]
	switch q.Type {
	case TypeMCQ:
		for _, opt := range q.Options {
			fmt.Fprintf(w, "   %s %s%s\n", marker(strings.EqualFold(OptionLetter(opt), answer)), opt,
				v.correctTag(strings.EqualFold(OptionLetter(opt), strings.TrimSpace(q.CorrectAnswer))))
		}
	case TypeTrueFalse:
		for _, opt := range []string{"True", "False"} {
			fmt.Fprintf(w, "   %s %s%s\n", marker(strings.EqualFold(opt, answer)), opt,
				v.correctTag(strings.EqualFold(opt, strings.TrimSpace(q.CorrectAnswer))))
		}
	case TypeShortAnswer:
		if answer == "" {
			fmt.Fprintln(w, "   Your answer: (none)")
		} else {
			fmt.Fprintf(w, "   Your answer: %s\n", answer)
		}
	}

	if !v.showAnswers {
		return
	}
	line := "   Correct Answer: " + q.CorrectAnswer
	if c := v.Check(q.ID); c != Unknown {
		line += "  " + c.String()
	}
	fmt.Fprintln(w, line)
	if q.Explanation != "" {
		fmt.Fprintf(w, "   Explanation: %s\n", q.Explanation)
	}
}

func (v *Viewer) correctTag(isCorrect bool) string {
	if v.showAnswers && isCorrect {
		return "  ✓"
	}
	return ""
}

func marker(selected bool) string {
	if selected {
		return "(x)"
	}
	return "( )"
}
