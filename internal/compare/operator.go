// Package compare evaluates a scanned number against a configured threshold.
package compare

import (
	"fmt"

	"github.com/numvision/ocr-number-gate/internal/numeric"
)

// Operator is one of the six comparison operators a gate can apply. The set
// is closed: anything else is rejected at parameter resolution, before any
// OCR work happens.
type Operator string

const (
	OpGreaterThan    Operator = ">"
	OpLessThan       Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
)

// DefaultOperator is applied when a parameter payload names none.
const DefaultOperator = OpGreaterOrEqual

// ParseOperator validates s against the closed operator set.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpGreaterThan, OpLessThan, OpGreaterOrEqual, OpLessOrEqual, OpEqual, OpNotEqual:
		return op, nil
	}
	return "", fmt.Errorf("invalid operator %q (must be one of >, <, >=, <=, ==, !=)", s)
}

// Apply evaluates "number op compareValue". It is total over the closed set;
// an Operator that never went through ParseOperator evaluates to false.
func (op Operator) Apply(number, compareValue numeric.Number) bool {
	cmp := number.Cmp(compareValue)
	switch op {
	case OpGreaterThan:
		return cmp > 0
	case OpLessThan:
		return cmp < 0
	case OpGreaterOrEqual:
		return cmp >= 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	}
	return false
}

// Outcome records a single evaluated comparison.
type Outcome struct {
	Number       numeric.Number
	CompareValue numeric.Number
	Operator     Operator
	Result       bool
}

// Evaluate applies op and records the verdict alongside its inputs.
func Evaluate(number numeric.Number, op Operator, compareValue numeric.Number) Outcome {
	return Outcome{
		Number:       number,
		CompareValue: compareValue,
		Operator:     op,
		Result:       op.Apply(number, compareValue),
	}
}

// Description renders the comparison the way it is reported, e.g. "5 >= 3".
// Both sides use collapsed rendering.
func (o Outcome) Description() string {
	return fmt.Sprintf("%s %s %s", o.Number, o.Operator, o.CompareValue)
}
