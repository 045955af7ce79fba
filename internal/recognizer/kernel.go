// Package recognizer implements the two numeric OCR analyses: a
// greater-than-zero report and a configurable comparison gate. Both share one
// pipeline: resolve params, run OCR over the region, parse the text, build
// the JSON detail payload.
package recognizer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/numvision/ocr-number-gate/internal/compare"
	"github.com/numvision/ocr-number-gate/internal/logging"
	"github.com/numvision/ocr-number-gate/internal/models"
	"github.com/numvision/ocr-number-gate/internal/numeric"
	"github.com/numvision/ocr-number-gate/internal/ocr"
)

// Recognizer runs one analysis mode against an OCR runner.
type Recognizer struct {
	mode   Mode
	runner ocr.Runner
}

func New(mode Mode, runner ocr.Runner) *Recognizer {
	return &Recognizer{mode: mode, runner: runner}
}

// Analyze runs one recognition pass over image. Every non-detection comes
// back as a *Failure; hosts decide how much of it to expose.
func (r *Recognizer) Analyze(ctx context.Context, image []byte, payload json.RawMessage) (*models.AnalysisResult, error) {
	id := uuid.New().String()

	params, fail := resolveParams(r.mode, payload)
	if fail != nil {
		return nil, fail
	}
	logging.Infof("[%s] %s analysis: %s", id, r.mode, params.describe(r.mode))

	res, err := r.runner.RunRecognition(ctx, params.OCRName, image, params.Region)
	if err != nil {
		return nil, newOCRFailure("recognition failed", err)
	}
	if res == nil {
		return nil, newOCRFailure("recognizer returned no result", nil)
	}
	logging.Infof("[%s] ocr text: %q", id, res.Text)

	switch r.mode {
	case ModeComparison:
		return r.buildComparison(id, params, res.Text)
	default:
		return r.buildGreaterThanZero(id, params, res.Text)
	}
}

func (r *Recognizer) buildGreaterThanZero(id string, params Params, text string) (*models.AnalysisResult, error) {
	number, err := numeric.ParseInteger(text)
	if err != nil {
		return nil, newParseError(fmt.Sprintf("ocr text %q is not an integer", text), err)
	}
	detail := models.GreaterThanZeroDetail{
		Number:          number,
		GreaterThanZero: number.IsPositive(),
	}
	logging.Infof("[%s] number=%s greater_than_zero=%t", id, number, detail.GreaterThanZero)
	return newResult(params.Region, detail)
}

func (r *Recognizer) buildComparison(id string, params Params, text string) (*models.AnalysisResult, error) {
	number, err := numeric.ParseReal(text)
	if err != nil {
		return nil, newParseError(fmt.Sprintf("ocr text %q is not a number", text), err)
	}
	outcome := compare.Evaluate(number, params.Operator, params.CompareValue)
	if !outcome.Result {
		return nil, newComparisonFalse(outcome)
	}
	logging.Infof("[%s] comparison %s holds", id, outcome.Description())
	return newResult(params.Region, models.ComparisonDetail{
		Number:       outcome.Number,
		CompareValue: outcome.CompareValue,
		Operator:     outcome.Operator,
		Result:       outcome.Result,
		Description:  outcome.Description(),
	})
}

func newResult(region models.Region, detail any) (*models.AnalysisResult, error) {
	payload, err := json.Marshal(detail)
	if err != nil {
		return nil, newParseError("encode detail", err)
	}
	return &models.AnalysisResult{Box: region, Detail: string(payload)}, nil
}
