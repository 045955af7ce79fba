// Package agent exposes the recognizers under their registered names and
// flattens every analysis failure into the uniform "no detection" answer a
// host pipeline expects. The reason for a miss shows up in the logs only.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/numvision/ocr-number-gate/internal/logging"
	"github.com/numvision/ocr-number-gate/internal/models"
	"github.com/numvision/ocr-number-gate/internal/ocr"
	"github.com/numvision/ocr-number-gate/internal/recognizer"
)

// Registered recognition names, as tasks refer to them.
const (
	NameGreaterThanZero = "IsNumberGreaterThanZero"
	NameComparison      = "NumberComparison"
)

// AnalyzeArg is one recognition request from a host pipeline.
type AnalyzeArg struct {
	TaskName        string          // task that triggered the analysis, for logs
	RecognitionName string          // name the host resolved, for logs
	Image           []byte          // encoded screenshot or capture
	Params          json.RawMessage // task's custom recognition params
}

// AnalyzeResult is a successful detection.
type AnalyzeResult struct {
	Box    models.Region
	Detail string
}

// Recognition is one registered analysis. Analyze reports ok=false for every
// kind of miss: bad params, OCR trouble, unparseable text, or a comparison
// that does not hold.
type Recognition interface {
	Name() string
	Analyze(ctx context.Context, arg AnalyzeArg) (AnalyzeResult, bool)
}

// New returns the recognition registered under name.
func New(name string, runner ocr.Runner) (Recognition, error) {
	switch name {
	case NameGreaterThanZero:
		return NewGreaterThanZero(runner), nil
	case NameComparison:
		return NewComparison(runner), nil
	default:
		return nil, fmt.Errorf("unknown recognition %q (have: %s)", name, strings.Join(Names(), ", "))
	}
}

// Names lists the registered recognition names.
func Names() []string {
	return []string{NameGreaterThanZero, NameComparison}
}

func analyze(ctx context.Context, core *recognizer.Recognizer, name string, arg AnalyzeArg) (AnalyzeResult, bool) {
	// Hosts may register a recognition under their own alias; log that name.
	if arg.RecognitionName != "" {
		name = arg.RecognitionName
	}
	res, err := core.Analyze(ctx, arg.Image, arg.Params)
	if err != nil {
		logFailure(name, arg.TaskName, err)
		return AnalyzeResult{}, false
	}
	logging.Infof("[%s] task %q detected: box=%s detail=%s", name, arg.TaskName, res.Box, res.Detail)
	return AnalyzeResult{Box: res.Box, Detail: res.Detail}, true
}

// logFailure reports a miss at a level matching its kind. A false comparison
// is a routine gate outcome, not an error.
func logFailure(name, task string, err error) {
	kind, _ := recognizer.KindOf(err)
	switch kind {
	case recognizer.FailureComparisonFalse:
		logging.Infof("[%s] task %q: %v", name, task, err)
	case recognizer.FailureParse:
		logging.Warnf("[%s] task %q: %v", name, task, err)
	default:
		logging.Errorf("[%s] task %q: %v", name, task, err)
	}
}
