package agent

import (
	"context"

	"github.com/numvision/ocr-number-gate/internal/ocr"
	"github.com/numvision/ocr-number-gate/internal/recognizer"
)

// Comparison reads a number from the region and detects only when the
// configured comparison against compare_value holds. A readable number that
// fails the comparison is a miss, same as unreadable text.
type Comparison struct {
	core *recognizer.Recognizer
}

func NewComparison(runner ocr.Runner) *Comparison {
	return &Comparison{core: recognizer.New(recognizer.ModeComparison, runner)}
}

func (c *Comparison) Name() string { return NameComparison }

func (c *Comparison) Analyze(ctx context.Context, arg AnalyzeArg) (AnalyzeResult, bool) {
	return analyze(ctx, c.core, c.Name(), arg)
}
