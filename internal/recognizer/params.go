package recognizer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/numvision/ocr-number-gate/internal/compare"
	"github.com/numvision/ocr-number-gate/internal/models"
	"github.com/numvision/ocr-number-gate/internal/numeric"
)

// Mode selects which analysis a Recognizer performs.
type Mode int

const (
	// ModeGreaterThanZero reads an integer and reports whether it exceeds zero.
	ModeGreaterThanZero Mode = iota
	// ModeComparison reads a number and gates on a configured comparison.
	ModeComparison
)

func (m Mode) String() string {
	switch m {
	case ModeGreaterThanZero:
		return "greater_than_zero"
	case ModeComparison:
		return "comparison"
	default:
		return "unknown"
	}
}

// DefaultRecognizerName is the OCR recognizer used when a task names none.
const DefaultRecognizerName = "MyCustomOCR"

// Params are the resolved analysis parameters after defaults and validation.
// CompareValue and Operator are only meaningful in ModeComparison.
type Params struct {
	Region       models.Region
	OCRName      string
	CompareValue numeric.Number
	Operator     compare.Operator
}

// describe renders the resolved parameters for logs.
func (p Params) describe(mode Mode) string {
	if mode == ModeComparison {
		return fmt.Sprintf("recognizer=%q roi=%s operator=%q compare_value=%s",
			p.OCRName, p.Region, p.Operator, p.CompareValue)
	}
	return fmt.Sprintf("recognizer=%q roi=%s", p.OCRName, p.Region)
}

// resolveParams validates the task's custom parameter payload and applies
// defaults. It never touches OCR: every problem it reports is a config error.
func resolveParams(mode Mode, payload json.RawMessage) (Params, *Failure) {
	var raw struct {
		ROI          *models.Region  `json:"roi"`
		OCRName      *string         `json:"ocr_name"`
		CompareValue json.RawMessage `json:"compare_value"`
		Operator     json.RawMessage `json:"operator"`
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &raw); err != nil {
			return Params{}, newConfigError("decode params: %v", err)
		}
	}

	params := Params{OCRName: DefaultRecognizerName, Operator: compare.DefaultOperator}
	if raw.ROI != nil {
		params.Region = *raw.ROI
	}
	if raw.OCRName != nil {
		params.OCRName = *raw.OCRName
	}
	if mode != ModeComparison {
		return params, nil
	}

	if len(raw.CompareValue) == 0 {
		return Params{}, newConfigError("compare_value is required")
	}
	value, fail := decodeCompareValue(raw.CompareValue)
	if fail != nil {
		return Params{}, fail
	}
	params.CompareValue = value

	if len(raw.Operator) > 0 {
		op, fail := decodeOperator(raw.Operator)
		if fail != nil {
			return Params{}, fail
		}
		params.Operator = op
	}
	return params, nil
}

// decodeCompareValue accepts only JSON numbers. A quoted number like "5" is
// a config error, not a number.
func decodeCompareValue(raw json.RawMessage) (numeric.Number, *Failure) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return numeric.Number{}, newConfigError("decode compare_value: %v", err)
	}
	n, ok := v.(json.Number)
	if !ok {
		return numeric.Number{}, newConfigError("compare_value must be a number, got %s", jsonTypeName(v))
	}
	value, err := numeric.FromJSONNumber(n)
	if err != nil {
		return numeric.Number{}, newConfigError("compare_value %q: %v", n.String(), err)
	}
	return value, nil
}

// decodeOperator accepts only a JSON string naming one of the comparison
// operators. A present key with a non-string value, null included, is a
// config error rather than a fallback to the default.
func decodeOperator(raw json.RawMessage) (compare.Operator, *Failure) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", newConfigError("decode operator: %v", err)
	}
	s, ok := v.(string)
	if !ok {
		return "", newConfigError("operator must be a string, got %s", jsonTypeName(v))
	}
	op, err := compare.ParseOperator(s)
	if err != nil {
		return "", newConfigError("%v", err)
	}
	return op, nil
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "value"
	}
}
