package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/voicequiz/internal/apperr"
	"github.com/saulo-duarte/voicequiz/internal/container"
	"github.com/saulo-duarte/voicequiz/internal/generate"
	"github.com/saulo-duarte/voicequiz/internal/quiz"
	"github.com/saulo-duarte/voicequiz/internal/upload"
	"github.com/saulo-duarte/voicequiz/internal/wizard"
)

var errFinished = errors.New("wizard finished")

type wizardOptions struct {
	difficulty string
	questions  string
	types      string
	exportDir  string
	language   string
}

func (o wizardOptions) presetSettings() bool {
	return o.difficulty != "" || o.questions != "" || o.types != ""
}

func (rt *runtime) newQuizCmd() *cobra.Command {
	var opts wizardOptions

	cmd := &cobra.Command{
		Use:   "new [audio-file]",
		Short: "Upload a lecture and turn it into a quiz",
		Long: `Run the four steps in order: upload the audio, review the transcript,
generate the quiz, then take and export it.

Example: voicequiz new lecture.mp3 --difficulty hard --questions 5 --types mcq,true_false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return rt.runWizard(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "easy|medium|hard (default medium)")
	cmd.Flags().StringVar(&opts.questions, "questions", "", "Number of questions, 1-50 (default 10)")
	cmd.Flags().StringVar(&opts.types, "types", "", "Comma separated question types: mcq,true_false,short_answer (default all)")
	cmd.Flags().StringVar(&opts.exportDir, "export-dir", "", "Where exported PDFs are written (overrides config)")
	cmd.Flags().StringVar(&opts.language, "language", "", "Transcription language hint (overrides config)")
	return cmd
}

type wizardRun struct {
	rt       *runtime
	features *container.Features
	w        *wizard.Wizard
	opts     wizardOptions
}

func (rt *runtime) runWizard(ctx context.Context, path string, opts wizardOptions) error {
	sess, err := rt.requireSession()
	if err != nil {
		return err
	}
	if opts.language != "" {
		rt.c.Config.Transcribe.Language = opts.language
	}
	if opts.exportDir == "" {
		opts.exportDir = rt.c.Config.Export.Dir
	}
	if err := rt.c.App.StartNewQuiz(); err != nil {
		return err
	}

	r := &wizardRun{
		rt:       rt,
		features: rt.c.Authorized(sess.Token),
		w:        rt.c.App.Wizard(),
		opts:     opts,
	}

	for {
		rt.printf("\n== Step %d of %d: %s ==\n", r.w.Step(), len(wizard.AllSteps), r.w.Step())

		switch r.w.Step() {
		case wizard.StepUpload:
			err = r.upload(ctx, path)
			path = ""
		case wizard.StepTranscribe:
			err = r.transcribe(ctx)
		case wizard.StepGenerate:
			err = r.generate(ctx)
		case wizard.StepReview:
			err = r.review(ctx)
		}

		switch {
		case err == nil:
		case errors.Is(err, errFinished):
			return nil
		case errors.Is(err, ErrAborted):
			_ = rt.c.App.BackToDashboard()
			rt.printf("Back to dashboard.\n")
			return nil
		default:
			_ = rt.c.App.BackToDashboard()
			return err
		}
	}
}

// fail puts msg in the wizard's error slot and shows it.
func (r *wizardRun) fail(msg string) {
	_ = r.w.Dispatch(wizard.Failed{Message: msg})
	r.rt.printf("Error: %s\n", msg)
}

func (r *wizardRun) upload(ctx context.Context, path string) error {
	step := r.features.UploadContainer.NewStep()
	p := r.rt.prompt

	for {
		if path == "" {
			var err error
			if path, err = p.Line("Audio file (MP3, WAV, M4A, OGG, max 50MB)", ""); err != nil {
				return err
			}
			if path == "" {
				continue
			}
		}

		c, err := upload.CandidateFromFile(path)
		path = ""
		if err != nil {
			r.fail("Cannot read that file.")
			continue
		}
		if err := step.Select(c); err != nil {
			r.fail(Message(err))
			continue
		}
		_ = r.w.Dispatch(wizard.ErrorCleared{})
		step.Summary(r.rt.out)

		for {
			r.rt.printf("Uploading audio file...\n")
			handle, err := step.Upload(ctx)
			if err == nil {
				return r.w.Dispatch(wizard.AudioUploaded{Handle: *handle})
			}
			r.fail(Message(err))

			retry, err := p.Confirm("Retry the upload?")
			if err != nil {
				return err
			}
			if !retry {
				break
			}
		}
	}
}

func (r *wizardRun) transcribe(ctx context.Context) error {
	state := r.w.State()
	step := r.features.TranscribeContainer.NewStep(*state.Audio)

	_ = r.w.Dispatch(wizard.ErrorCleared{})
	r.rt.printf("Transcribing %s. This may take a few moments depending on the audio length.\n", state.Audio.DisplayName())
	if _, err := step.Enter(ctx); err != nil {
		_ = r.w.Dispatch(wizard.Failed{Message: Message(err)})
		return err
	}

	r.rt.printf("Transcription completed successfully!\n\n")
	step.Summary(r.rt.out)

	ok, err := r.rt.prompt.Confirm("\nTranscript looks good? Continue to quiz generation")
	if err != nil {
		return err
	}
	if !ok {
		r.rt.printf("Try uploading a clearer audio file.\n")
		return ErrAborted
	}

	t, err := step.Confirm()
	if err != nil {
		return err
	}
	return r.w.Dispatch(wizard.TranscriptConfirmed{Transcript: *t})
}

func (r *wizardRun) generate(ctx context.Context) error {
	state := r.w.State()
	step := r.features.GenerateContainer.NewStep(*state.Audio, *state.Transcript)

	if r.opts.difficulty != "" {
		step.Settings.Difficulty = r.opts.difficulty
	}
	if r.opts.questions != "" {
		step.Settings.NumQuestions = r.opts.questions
	}
	interactive := !r.opts.presetSettings()
	if r.opts.types != "" {
		if err := step.Settings.SetTypes(r.opts.types); err != nil {
			r.fail(Message(err))
			interactive = true
		}
	}

	for {
		if interactive {
			if err := r.editSettings(&step.Settings); err != nil {
				return err
			}
		}
		interactive = true

		_ = r.w.Dispatch(wizard.ErrorCleared{})
		r.rt.printf("Generating quiz questions...\n")
		res, err := step.Generate(ctx)
		if err == nil {
			return r.w.Dispatch(wizard.QuizGenerated{Result: *res})
		}
		r.fail(Message(err))

		if apperr.IsKind(err, apperr.KindValidation) {
			continue
		}
		retry, err := r.rt.prompt.Confirm("Try again?")
		if err != nil {
			return err
		}
		if !retry {
			return ErrAborted
		}
	}
}

func (r *wizardRun) editSettings(s *generate.Settings) error {
	p := r.rt.prompt
	var err error

	if s.Difficulty, err = p.Line("Difficulty ("+strings.Join(generate.Difficulties, "/")+")", s.Difficulty); err != nil {
		return err
	}
	label := fmt.Sprintf("Number of questions (%d-%d)", generate.MinQuestions, generate.MaxQuestions)
	if s.NumQuestions, err = p.Line(label, s.NumQuestions); err != nil {
		return err
	}

	current := make([]string, 0, len(quiz.AllTypes))
	for _, t := range s.QuestionTypes() {
		current = append(current, string(t))
	}
	types, err := p.Line("Question types (mcq, true_false, short_answer; \"none\" clears)", strings.Join(current, ","))
	if err != nil {
		return err
	}
	if types == "none" {
		types = ""
	}
	if err := s.SetTypes(types); err != nil {
		r.fail(Message(err))
		return r.editSettings(s)
	}
	return nil
}

func (r *wizardRun) review(ctx context.Context) error {
	state := r.w.State()
	v := r.features.QuizContainer.NewViewer(state.Quiz, state.Method)
	p := r.rt.prompt

	v.Render(r.rt.out)
	r.rt.printf("\n")

	for i, q := range state.Quiz.Questions {
		for {
			answer, err := p.Line(fmt.Sprintf("Your answer to Q%d %s", i+1, answerHint(q)), v.UserAnswer(q.ID))
			if err != nil {
				return err
			}
			if err := v.Answer(q.ID, answer); err != nil {
				r.rt.printf("%s\n", Message(err))
				continue
			}
			break
		}
	}

	for {
		choice, err := p.Line("\n[s] show/hide answers  [e] export PDF  [a] export PDF with answers  [n] new quiz  [d] dashboard  [q] quit", "")
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "s":
			v.ToggleAnswers()
			v.Render(r.rt.out)
		case "e", "a":
			r.rt.printf("Downloading...\n")
			path, err := v.Export(ctx, strings.EqualFold(choice, "a"), r.opts.exportDir)
			if err != nil {
				r.fail(Message(err))
				continue
			}
			r.rt.printf("Saved %s\n", path)
		case "n":
			return r.rt.c.App.StartNewQuiz()
		case "d":
			if err := r.rt.c.App.BackToDashboard(); err != nil {
				return err
			}
			if err := r.rt.showDashboard(ctx); err != nil {
				return err
			}
			return errFinished
		case "q":
			return errFinished
		}
	}
}

func answerHint(q quiz.Question) string {
	switch q.Type {
	case quiz.TypeMCQ:
		return "(letter)"
	case quiz.TypeTrueFalse:
		return "(True/False)"
	default:
		return "(free text, Enter to skip)"
	}
}
