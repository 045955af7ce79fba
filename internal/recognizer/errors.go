package recognizer

import (
	"errors"
	"fmt"

	"github.com/numvision/ocr-number-gate/internal/compare"
)

// FailureKind classifies why an analysis produced no detection.
type FailureKind string

const (
	FailureConfig          FailureKind = "config_error"     // malformed or missing parameters
	FailureOCR             FailureKind = "ocr_failure"      // recognizer missing or engine error
	FailureParse           FailureKind = "parse_error"      // OCR text is not a number
	FailureComparisonFalse FailureKind = "comparison_false" // number read fine, comparison did not hold
)

// Failure is the error type every non-detection flows through. Hosts report
// all kinds the same way; the kind and fields exist for logs and tests.
type Failure struct {
	Kind    FailureKind
	Message string
	Cause   error
	// Outcome is set for FailureComparisonFalse so logs can show what was
	// actually compared.
	Outcome *compare.Outcome
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error { return f.Cause }

func newConfigError(format string, args ...any) *Failure {
	return &Failure{Kind: FailureConfig, Message: fmt.Sprintf(format, args...)}
}

func newOCRFailure(message string, cause error) *Failure {
	return &Failure{Kind: FailureOCR, Message: message, Cause: cause}
}

func newParseError(message string, cause error) *Failure {
	return &Failure{Kind: FailureParse, Message: message, Cause: cause}
}

func newComparisonFalse(outcome compare.Outcome) *Failure {
	return &Failure{
		Kind:    FailureComparisonFalse,
		Message: fmt.Sprintf("comparison %s is false", outcome.Description()),
		Outcome: &outcome,
	}
}

// KindOf extracts the failure kind from an analysis error. The second return
// is false when err is not a *Failure.
func KindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return "", false
}
