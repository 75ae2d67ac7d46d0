package domain

import (
	"encoding/json"
	"math"
	"testing"
)

func TestValueNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`null`, 0},
		{`1`, 1},
		{`-3.5`, -3.5},
		{`"1"`, 1},
		{`"  7  "`, 7},
		{`""`, 0},
		{`"   "`, 0},
		{`"0x10"`, 16},
		{`"1e2"`, 100},
		{`true`, 1},
		{`false`, 0},
		{`[]`, 0},
		{`["4"]`, 4},
		{`"Infinity"`, math.Inf(1)},
	}
	for _, tc := range cases {
		var raw any
		if err := json.Unmarshal([]byte(tc.raw), &raw); err != nil {
			t.Fatalf("decode %s: %v", tc.raw, err)
		}
		if got := ValueOf(raw).Number(); got != tc.want {
			t.Errorf("Number(%s) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestValueNumber_NaN(t *testing.T) {
	for _, raw := range []string{`"abc"`, `"1_000"`, `"inf"`, `"NaN"`, `{}`, `[1,2]`, `"-0x1"`} {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
		if got := ValueOf(v).Number(); !math.IsNaN(got) {
			t.Errorf("Number(%s) = %v, want NaN", raw, got)
		}
	}
}

func TestValue_MissingField(t *testing.T) {
	var v Value
	if v.Present() {
		t.Fatalf("zero Value must not be present")
	}
	if v.Number() != 0 {
		t.Fatalf("missing value must coerce to 0")
	}
	if _, ok := v.String(); ok {
		t.Fatalf("missing value is not a string")
	}
	out, err := json.Marshal(v)
	if err != nil || string(out) != "null" {
		t.Fatalf("expected null, got %s (%v)", out, err)
	}
}

func TestValue_ExplicitNullIsPresent(t *testing.T) {
	var c Client
	if err := json.Unmarshal([]byte(`{"id":null}`), &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.ID.Raw() != nil {
		t.Fatalf("expected nil raw value, got %v", c.ID.Raw())
	}
}
