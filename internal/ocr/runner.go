package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/numvision/ocr-number-gate/internal/models"
)

// Runner invokes a named recognizer over a region of an image. The empty
// region means the whole image. Implementations return a nil result or an
// error when nothing could be recognized; they never panic.
type Runner interface {
	RunRecognition(ctx context.Context, name string, image []byte, region models.Region) (*Result, error)
}

// runner is the registry-backed Runner: it looks the engine up by name,
// restricts the image to the region and hands the engine the cropped bytes.
type runner struct {
	reg *Registry
}

// NewRunner returns a Runner dispatching into reg.
func NewRunner(reg *Registry) Runner {
	return &runner{reg: reg}
}

func (r *runner) RunRecognition(ctx context.Context, name string, image []byte, region models.Region) (res *Result, err error) {
	eng, ok := r.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no recognizer registered as %q (have: %s)", name, strings.Join(r.reg.Names(), ", "))
	}

	cropped := image
	if !region.IsEmpty() {
		cropped, err = CropRegion(image, region)
		if err != nil {
			return nil, fmt.Errorf("crop region %s: %w", region, err)
		}
	}

	// An engine panic must surface as a recognition failure, not kill the host.
	defer func() {
		if p := recover(); p != nil {
			res, err = nil, fmt.Errorf("recognizer %q panicked: %v", name, p)
		}
	}()

	out, err := eng.Recognize(ctx, Input{Image: cropped})
	if err != nil {
		return nil, fmt.Errorf("recognizer %q (%s): %w", name, eng.Name(), err)
	}
	return &Result{Text: out.Text}, nil
}
