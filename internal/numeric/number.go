// Package numeric holds the number representation shared by the recognizers.
//
// Scanned text and configured thresholds both become a Number, which keeps
// exact decimal precision and collapses to an integer whenever the value has
// no fractional part: "5" and "5.0" both render as 5, "5.5" stays 5.5.
package numeric

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a numeric value scanned from an image or taken from parameters.
// The zero value is 0.
type Number struct {
	dec decimal.Decimal
}

// FromJSONNumber converts a number decoded from a JSON payload.
func FromJSONNumber(n json.Number) (Number, error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return Number{}, fmt.Errorf("%q is not a number", n.String())
	}
	return Number{dec: d}, nil
}

// ParseInteger parses text strictly as a base-10 integer. Surrounding
// whitespace and a leading sign are accepted; decimal points, exponents and
// digit separators are not. Magnitude is unbounded.
func ParseInteger(text string) (Number, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
	if !ok {
		return Number{}, fmt.Errorf("parse integer %q: not a base-10 integer", text)
	}
	return Number{dec: decimal.NewFromBigInt(v, 0)}, nil
}

// ParseReal parses text as a decimal number. Integer, fractional and
// exponent forms are accepted, including float-style ".5" and "5."
// spellings. Anything else, NaN and infinity included, is an error.
func ParseReal(text string) (Number, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return Number{}, fmt.Errorf("parse number: empty text")
	}
	d, err := decimal.NewFromString(canonicalReal(t))
	if err != nil {
		return Number{}, fmt.Errorf("parse number %q: %w", text, err)
	}
	return Number{dec: d}, nil
}

// canonicalReal rewrites single-dot bare forms (".5", "5.", "-.5") into the
// shape decimal.NewFromString accepts. Text with any other dot count passes
// through unchanged, so malformed spellings like ".5." or "5.5." keep their
// extra dots and fail the decimal parse.
func canonicalReal(t string) string {
	if strings.Count(t, ".") != 1 {
		return t
	}
	s := t
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	if len(s) > 1 && strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if len(s) > 1 && strings.HasSuffix(s, ".") {
		s = s[:len(s)-1]
	}
	return sign + s
}

// IsInteger reports whether the value has no fractional part.
func (n Number) IsInteger() bool {
	return n.dec.IsInteger()
}

// IsPositive reports whether the value is strictly greater than zero.
func (n Number) IsPositive() bool {
	return n.dec.IsPositive()
}

// Cmp compares n with other: -1 when n < other, 0 when equal, +1 when
// n > other. Equality is exact numeric equality, so 5 equals 5.0.
func (n Number) Cmp(other Number) int {
	return n.dec.Cmp(other.dec)
}

// String renders the collapsed form: "5" for integral values, "5.5"
// otherwise. Trailing fractional zeros never appear.
func (n Number) String() string {
	return n.dec.String()
}

// MarshalJSON emits a raw JSON number in collapsed form, so integral values
// serialize as integers.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.dec.String()), nil
}

// UnmarshalJSON accepts both raw and quoted JSON numbers.
func (n *Number) UnmarshalJSON(data []byte) error {
	return n.dec.UnmarshalJSON(data)
}
