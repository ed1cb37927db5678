package analysis

import (
	"errors"
	"fmt"
)

// FailureMessage is the only error text a learner ever sees.
const FailureMessage = "Analysis failed. Please try again. Make sure your input isn't empty."

var (
	// ErrAnalysisFailed wraps every failure returned by Analyzer.Analyze.
	ErrAnalysisFailed = errors.New("analysis failed")

	ErrEmptyInput   = errors.New("topic and understanding must not be empty")
	ErrUnknownStyle = errors.New("unknown learning style")
)

// failed wraps cause so that errors.Is(err, ErrAnalysisFailed) holds while
// the cause stays reachable for logs.
func failed(stage string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrAnalysisFailed, stage, cause)
}

// UserMessage maps any error to the text shown to the learner.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return FailureMessage
}
