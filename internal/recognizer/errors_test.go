package recognizer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numvision/ocr-number-gate/internal/compare"
	"github.com/numvision/ocr-number-gate/internal/numeric"
)

func TestFailureError(t *testing.T) {
	plain := newConfigError("compare_value is required")
	assert.Equal(t, "config_error: compare_value is required", plain.Error())

	cause := errors.New("no such recognizer")
	wrapped := newOCRFailure("recognition failed", cause)
	assert.Equal(t, "ocr_failure: recognition failed: no such recognizer", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestComparisonFalseCarriesOutcome(t *testing.T) {
	two, err := numeric.ParseReal("2")
	require.NoError(t, err)
	three, err := numeric.ParseReal("3")
	require.NoError(t, err)

	fail := newComparisonFalse(compare.Evaluate(two, compare.OpGreaterOrEqual, three))
	assert.Equal(t, FailureComparisonFalse, fail.Kind)
	require.NotNil(t, fail.Outcome)
	assert.Equal(t, "comparison_false: comparison 2 >= 3 is false", fail.Error())
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(newParseError("not a number", nil))
	assert.True(t, ok)
	assert.Equal(t, FailureParse, kind)

	kind, ok = KindOf(fmt.Errorf("wrapped: %w", newConfigError("bad roi")))
	assert.True(t, ok)
	assert.Equal(t, FailureConfig, kind)

	_, ok = KindOf(errors.New("unrelated"))
	assert.False(t, ok)
}
