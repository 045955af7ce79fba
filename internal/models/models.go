package models

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/numvision/ocr-number-gate/internal/compare"
	"github.com/numvision/ocr-number-gate/internal/numeric"
)

// Region is a rectangular area of the source image. On the wire it is a
// four-element array [x, y, width, height]; the all-zero region means
// "whole image".
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsEmpty reports the all-zero region.
func (r Region) IsEmpty() bool {
	return r == Region{}
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", r.X, r.Y, r.Width, r.Height)
}

// MarshalJSON encodes the region as [x, y, width, height].
func (r Region) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{r.X, r.Y, r.Width, r.Height})
}

// UnmarshalJSON decodes a [x, y, width, height] array. Each element must be
// an integral JSON number.
func (r *Region) UnmarshalJSON(data []byte) error {
	var elems []float64
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("roi must be an array of 4 numbers")
	}
	if len(elems) != 4 {
		return fmt.Errorf("roi must have exactly 4 elements, got %d", len(elems))
	}
	vals := [4]int{}
	for i, e := range elems {
		if e != math.Trunc(e) || math.IsInf(e, 0) {
			return fmt.Errorf("roi element %d must be an integer, got %v", i, e)
		}
		vals[i] = int(e)
	}
	r.X, r.Y, r.Width, r.Height = vals[0], vals[1], vals[2], vals[3]
	return nil
}

// GreaterThanZeroDetail is the payload reported by the report-only
// recognition: the scanned number and whether it is above zero.
type GreaterThanZeroDetail struct {
	Number          numeric.Number `json:"number"`
	GreaterThanZero bool           `json:"greater_than_zero"`
}

// ComparisonDetail is the payload reported by the gating recognition when
// the comparison holds.
type ComparisonDetail struct {
	Number       numeric.Number   `json:"number"`
	CompareValue numeric.Number   `json:"compare_value"`
	Operator     compare.Operator `json:"operator"`
	Result       bool             `json:"result"`
	Description  string           `json:"description"` // e.g. "5 >= 3"
}

// AnalysisResult is what a recognition hands back on detection. Box echoes
// the scanned region exactly as resolved and Detail holds the serialized
// detail payload.
type AnalysisResult struct {
	Box    Region `json:"box"`
	Detail string `json:"detail"`
}

// Config represents the gate configuration loaded from yaml.
type Config struct {
	// Logging
	Log LogConfig `yaml:"log"`

	// Named OCR recognizers available to the gate
	Recognizers map[string]RecognizerConfig `yaml:"recognizers"`

	// Defaults for single-shot runs
	Gate GateConfig `yaml:"gate"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}

// RecognizerConfig configures one named OCR engine.
type RecognizerConfig struct {
	Engine    string `yaml:"engine"`              // "tesseract", "openai" or "gemini"
	Language  string `yaml:"language,omitempty"`  // tesseract language (default: "eng")
	Whitelist string `yaml:"whitelist,omitempty"` // tesseract character whitelist
	Model     string `yaml:"model,omitempty"`     // vision model name
	APIKey    string `yaml:"api_key,omitempty"`   // falls back to OPENAI_API_KEY / GEMINI_API_KEY
	BaseURL   string `yaml:"base_url,omitempty"`  // custom OpenAI-compatible endpoint
}

// GateConfig picks the recognition a bare run executes.
type GateConfig struct {
	Recognition string `yaml:"recognition"` // "IsNumberGreaterThanZero" or "NumberComparison"
	Params      string `yaml:"params"`      // JSON parameter payload
}
