// Package jsonnum decodes loosely typed numeric JSON fields.
//
// Quote APIs return prices either as numbers or as numeric strings, and
// sometimes as null or garbage. A Float never fails to unmarshal: anything
// that is not a finite number is simply not Valid.
package jsonnum

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Float is a JSON number that may be absent or unparseable.
type Float struct {
	Value float64
	Valid bool
}

// UnmarshalJSON accepts 1.23, "1.23" and " 1.23 "; everything else leaves f invalid.
func (f *Float) UnmarshalJSON(b []byte) error {
	*f = Float{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(b)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	f.Value, f.Valid = v, true
	return nil
}

// Ptr returns a pointer to the value, or nil when invalid.
func (f Float) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// Or returns the value, or def when invalid.
func (f Float) Or(def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Value
}
