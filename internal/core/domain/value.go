package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a loosely typed JSON scalar taken from a stored session document.
// The zero Value represents a missing field.
type Value struct {
	raw     any
	present bool
}

// ValueOf wraps a decoded JSON value (string, float64, bool, nil, map, slice).
func ValueOf(v any) Value {
	return Value{raw: v, present: true}
}

// Present reports whether the field existed in the document, even as null.
func (v Value) Present() bool { return v.present }

// Raw returns the decoded JSON value, nil for missing or null fields.
func (v Value) Raw() any { return v.raw }

// String returns the value when it is a JSON string.
func (v Value) String() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// Number coerces the value the way the dashboard's scripts compare ids:
//
//	missing, null, ""  → 0
//	true / false       → 1 / 0
//	" 12 "             → 12
//	"abc", {}, [1,2]   → NaN
func (v Value) Number() float64 {
	switch x := v.raw.(type) {
	case nil:
		return 0
	case float64:
		return x
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return stringToNumber(x)
	case []any:
		switch len(x) {
		case 0:
			return 0
		case 1:
			return ValueOf(x[0]).Number()
		}
		return math.NaN()
	default:
		return math.NaN()
	}
}

func stringToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// ParseFloat accepts spellings such as "inf", "nan" and "1_000" that
	// scripts would reject.
	for _, r := range lower {
		if !strings.ContainsRune("0123456789+-.e", r) {
			return math.NaN()
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// UnmarshalJSON records the field as present, including an explicit null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = ValueOf(raw)
	return nil
}

// MarshalJSON renders missing values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}
