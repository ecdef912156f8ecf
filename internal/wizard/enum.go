package wizard

type Step int

const (
	StepUpload Step = iota + 1
	StepTranscribe
	StepGenerate
	StepReview
)

var AllSteps = []Step{
	StepUpload,
	StepTranscribe,
	StepGenerate,
	StepReview,
}

func (s Step) IsValid() bool {
	for _, v := range AllSteps {
		if s == v {
			return true
		}
	}
	return false
}

func (s Step) String() string {
	switch s {
	case StepUpload:
		return "Upload Audio"
	case StepTranscribe:
		return "Transcribe"
	case StepGenerate:
		return "Generate Quiz"
	case StepReview:
		return "Take Quiz"
	default:
		return "Unknown"
	}
}
