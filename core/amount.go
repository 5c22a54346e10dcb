package core

import (
	"bytes"
	"math"
	"strconv"
)

// Amount is a monetary value as exchanged with the school API. The API (and
// the data already in it) is loose about types: amounts arrive as JSON
// numbers or as numeric strings, and the odd record carries garbage. Amount
// coerces defensively on decode so that a single malformed record can never
// poison an aggregate with NaN.
type Amount float64

var jsonNull = []byte("null")

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*a = 0
		return nil
	}
	s := string(data)
	if s[0] == '"' {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			*a = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func (a Amount) Float() float64 { return float64(a) }
