package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine runs a local Tesseract process through gosseract. A fresh
// client is created per call, so the engine is safe for concurrent use.
type TesseractEngine struct {
	Language  string // OCR language, empty means gosseract's default ("eng")
	Whitelist string // optional character whitelist, e.g. "0123456789.+-"
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize extracts the text in the image, reading it as a single line.
func (e *TesseractEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(in.Image); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}
	if e.Language != "" {
		if err := client.SetLanguage(e.Language); err != nil {
			return Result{}, fmt.Errorf("set language %q: %w", e.Language, err)
		}
	}
	if e.Whitelist != "" {
		if err := client.SetWhitelist(e.Whitelist); err != nil {
			return Result{}, fmt.Errorf("set whitelist: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		return Result{}, fmt.Errorf("set page seg mode: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return Result{}, fmt.Errorf("recognize text: %w", err)
	}
	return Result{Text: strings.TrimSpace(text)}, nil
}
