package agent

import (
	"context"

	"github.com/numvision/ocr-number-gate/internal/ocr"
	"github.com/numvision/ocr-number-gate/internal/recognizer"
)

// GreaterThanZero reads an integer from the region and reports whether it is
// above zero. Reading any integer counts as a detection; the verdict rides
// along in the detail payload.
type GreaterThanZero struct {
	core *recognizer.Recognizer
}

func NewGreaterThanZero(runner ocr.Runner) *GreaterThanZero {
	return &GreaterThanZero{core: recognizer.New(recognizer.ModeGreaterThanZero, runner)}
}

func (g *GreaterThanZero) Name() string { return NameGreaterThanZero }

func (g *GreaterThanZero) Analyze(ctx context.Context, arg AnalyzeArg) (AnalyzeResult, bool) {
	return analyze(ctx, g.core, g.Name(), arg)
}
