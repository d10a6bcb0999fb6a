package handler

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// maxAbsUnits is the largest magnitude that survives the cents conversion
// without overflowing int64.
const maxAbsUnits = float64(math.MaxInt64) / 100

// looseNumber accepts JSON numbers and numeric strings, mirroring the
// Number() coercion the API's existing clients rely on. Absent, non-numeric,
// non-finite, or overflowing values leave ok false; UnmarshalJSON never
// fails the decode.
type looseNumber struct {
	value float64
	ok    bool
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			n.set(v)
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.set(f)
	}
	return nil
}

func (n *looseNumber) set(v float64) {
	if math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) > maxAbsUnits {
		return
	}
	n.value, n.ok = v, true
}

// looseTimestamp accepts JSON strings and numbers for the optional wager
// timestamp. Numbers are epoch milliseconds and keep their digits as text
// for the instant parser. Other values leave the field empty; UnmarshalJSON
// never fails the decode.
type looseTimestamp struct {
	value string
}

func (t *looseTimestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.value = s
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		t.value = strings.TrimSpace(string(data))
	}
	return nil
}
