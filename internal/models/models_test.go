package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numvision/ocr-number-gate/internal/compare"
	"github.com/numvision/ocr-number-gate/internal/numeric"
)

func TestRegionJSONRoundTrip(t *testing.T) {
	r := Region{X: 10, Y: 20, Width: 200, Height: 40}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "[10,20,200,40]", string(data))

	var back Region
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestRegionZeroValue(t *testing.T) {
	var r Region
	assert.True(t, r.IsEmpty())
	assert.Equal(t, "[0,0,0,0]", r.String())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "[0,0,0,0]", string(data))

	require.NoError(t, json.Unmarshal([]byte("[0,0,0,0]"), &r))
	assert.True(t, r.IsEmpty())

	assert.False(t, Region{Width: 1, Height: 1}.IsEmpty())
}

func TestRegionUnmarshalErrors(t *testing.T) {
	for _, data := range []string{
		`[1,2,3]`,
		`[1,2,3,4,5]`,
		`[1,"2",3,4]`,
		`[1.5,2,3,4]`,
		`{"x":1}`,
		`"roi"`,
		`123`,
	} {
		var r Region
		assert.Error(t, json.Unmarshal([]byte(data), &r), "data %s", data)
	}
}

func TestGreaterThanZeroDetailShape(t *testing.T) {
	n, err := numeric.ParseInteger("42")
	require.NoError(t, err)
	data, err := json.Marshal(GreaterThanZeroDetail{Number: n, GreaterThanZero: true})
	require.NoError(t, err)
	assert.Equal(t, `{"number":42,"greater_than_zero":true}`, string(data))
}

func TestComparisonDetailShape(t *testing.T) {
	n, err := numeric.ParseReal("5")
	require.NoError(t, err)
	cv, err := numeric.ParseReal("3")
	require.NoError(t, err)
	out := compare.Evaluate(n, compare.OpGreaterOrEqual, cv)
	data, err := json.Marshal(ComparisonDetail{
		Number:       out.Number,
		CompareValue: out.CompareValue,
		Operator:     out.Operator,
		Result:       out.Result,
		Description:  out.Description(),
	})
	require.NoError(t, err)
	assert.Equal(t,
		`{"number":5,"compare_value":3,"operator":">=","result":true,"description":"5 >= 3"}`,
		string(data))
}
