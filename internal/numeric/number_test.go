package numeric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntegerAccepts(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"42", "42"},
		{"-3", "-3"},
		{"+5", "5"},
		{"0", "0"},
		{" 17 ", "17"},
		{"\t-8\n", "-8"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"-99999999999999999999", "-99999999999999999999"},
	}
	for _, tc := range cases {
		n, err := ParseInteger(tc.text)
		require.NoError(t, err, "text %q", tc.text)
		assert.Equal(t, tc.want, n.String(), "text %q", tc.text)
		assert.True(t, n.IsInteger(), "text %q", tc.text)
	}
}

func TestParseIntegerRejects(t *testing.T) {
	for _, text := range []string{"", "abc", "5.0", "-3.5", "1e3", "1_000", "5 0", "٥"} {
		_, err := ParseInteger(text)
		assert.Error(t, err, "text %q", text)
	}
}

func TestParseRealCollapsesIntegers(t *testing.T) {
	for _, text := range []string{"5", "5.0", "5.00", " 5 ", "+5.0"} {
		n, err := ParseReal(text)
		require.NoError(t, err, "text %q", text)
		assert.Equal(t, "5", n.String(), "text %q", text)
		assert.True(t, n.IsInteger(), "text %q", text)
	}
}

func TestParseRealKeepsFractions(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"5.5", "5.5"},
		{"-3.5", "-3.5"},
		{"0.50", "0.5"},
		{".5", "0.5"},
		{"-.5", "-0.5"},
		{"5.", "5"},
		{"1e3", "1000"},
		{"1.5e2", "150"},
	}
	for _, tc := range cases {
		n, err := ParseReal(tc.text)
		require.NoError(t, err, "text %q", tc.text)
		assert.Equal(t, tc.want, n.String(), "text %q", tc.text)
	}
}

func TestParseRealRejects(t *testing.T) {
	for _, text := range []string{"", "  ", "abc", "1,234", "NaN", "Inf", "-inf", ".", "5..0", "5.5.5"} {
		_, err := ParseReal(text)
		assert.Error(t, err, "text %q", text)
	}
}

func TestParseRealRejectsTrailingDot(t *testing.T) {
	for _, text := range []string{".5.", "5.5.", "-.5.", "12.34."} {
		_, err := ParseReal(text)
		assert.Error(t, err, "text %q", text)
	}
}

func TestFromJSONNumber(t *testing.T) {
	n, err := FromJSONNumber(json.Number("3"))
	require.NoError(t, err)
	assert.Equal(t, "3", n.String())

	n, err = FromJSONNumber(json.Number("3.25"))
	require.NoError(t, err)
	assert.Equal(t, "3.25", n.String())

	_, err = FromJSONNumber(json.Number(""))
	assert.Error(t, err)
}

func TestMarshalJSONCollapsed(t *testing.T) {
	five, err := ParseReal("5.0")
	require.NoError(t, err)
	data, err := json.Marshal(five)
	require.NoError(t, err)
	assert.Equal(t, "5", string(data))

	half, err := ParseReal("5.5")
	require.NoError(t, err)
	data, err = json.Marshal(half)
	require.NoError(t, err)
	assert.Equal(t, "5.5", string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	var n Number
	require.NoError(t, json.Unmarshal([]byte("2.5"), &n))
	assert.Equal(t, "2.5", n.String())
}

func TestCmpAndSign(t *testing.T) {
	five, _ := ParseReal("5")
	fivePointZero, _ := ParseReal("5.0")
	half, _ := ParseReal("0.5")
	neg, _ := ParseInteger("-3")
	var zero Number

	assert.Equal(t, 0, five.Cmp(fivePointZero))
	assert.Equal(t, 1, five.Cmp(half))
	assert.Equal(t, -1, neg.Cmp(zero))

	assert.True(t, five.IsPositive())
	assert.True(t, half.IsPositive())
	assert.False(t, zero.IsPositive())
	assert.False(t, neg.IsPositive())
}
