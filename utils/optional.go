// Package utils holds the helpers that turn loosely typed CRM values into
// explicit optionals. The CRM serializes nulls as the literal "None", so every
// field read goes through one of the parsers below instead of ad hoc checks.
package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/radhian/credit-timeline/consts"
	"github.com/shopspring/decimal"
)

type OptionalInt struct {
	Value int64
	Valid bool
}

type OptionalDecimal struct {
	Value decimal.Decimal
	Valid bool
}

type OptionalString struct {
	Value string
	Valid bool
}

func SomeInt(v int64) OptionalInt { return OptionalInt{Value: v, Valid: true} }

func SomeDecimal(v decimal.Decimal) OptionalDecimal {
	return OptionalDecimal{Value: v, Valid: true}
}

func SomeString(v string) OptionalString { return OptionalString{Value: v, Valid: true} }

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(o.Value, 10)), nil
}

func (o OptionalDecimal) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return o.Value.MarshalJSON()
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// IsNull reports whether raw is missing under the CRM conventions:
// nil, an empty string or the "None" literal.
func IsNull(raw interface{}) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return s == "" || s == consts.NullLiteral
}

func ParseOptionalString(raw interface{}) OptionalString {
	if IsNull(raw) {
		return OptionalString{}
	}
	switch v := raw.(type) {
	case string:
		return SomeString(strings.TrimSpace(v))
	case json.Number:
		return SomeString(v.String())
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return OptionalString{}
		}
		return SomeString(strconv.FormatFloat(v, 'f', -1, 64))
	case int:
		return SomeString(strconv.Itoa(v))
	case int64:
		return SomeString(strconv.FormatInt(v, 10))
	}
	return OptionalString{}
}

// ParseOptionalInt accepts integers, integral floats and their string forms.
// Fractional or non-numeric input is absent, never truncated.
func ParseOptionalInt(raw interface{}) OptionalInt {
	if IsNull(raw) {
		return OptionalInt{}
	}
	switch v := raw.(type) {
	case int:
		return SomeInt(int64(v))
	case int32:
		return SomeInt(int64(v))
	case int64:
		return SomeInt(v)
	case float64:
		return intFromFloat(v)
	case float32:
		return intFromFloat(float64(v))
	case json.Number:
		return parseIntString(v.String())
	case string:
		return parseIntString(v)
	}
	return OptionalInt{}
}

func parseIntString(s string) OptionalInt {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return SomeInt(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return OptionalInt{}
	}
	return intFromFloat(f)
}

func intFromFloat(f float64) OptionalInt {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return OptionalInt{}
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return OptionalInt{}
	}
	return SomeInt(int64(f))
}

func ParseOptionalDecimal(raw interface{}) OptionalDecimal {
	if IsNull(raw) {
		return OptionalDecimal{}
	}
	switch v := raw.(type) {
	case int:
		return SomeDecimal(decimal.NewFromInt(int64(v)))
	case int32:
		return SomeDecimal(decimal.NewFromInt32(v))
	case int64:
		return SomeDecimal(decimal.NewFromInt(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return OptionalDecimal{}
		}
		return SomeDecimal(decimal.NewFromFloat(v))
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return OptionalDecimal{}
		}
		return SomeDecimal(decimal.NewFromFloat32(v))
	case json.Number:
		return parseDecimalString(v.String())
	case string:
		return parseDecimalString(v)
	}
	return OptionalDecimal{}
}

func parseDecimalString(s string) OptionalDecimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return OptionalDecimal{}
	}
	return SomeDecimal(d)
}

// IntOrZero is used for counters where a missing value legitimately means none.
// A negative count is not a count and reads as 0.
func IntOrZero(raw interface{}) int64 {
	o := ParseOptionalInt(raw)
	if !o.Valid || o.Value < 0 {
		return 0
	}
	return o.Value
}
