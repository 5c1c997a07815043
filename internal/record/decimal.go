package record

import (
	"math"
	"strconv"
	"strings"
)

// Decimal is a float64 that serializes with shortest round-trip digits and
// always keeps a fractional part or exponent, so 10 encodes as 10.0.
// Magnitudes below 1e-4 or from 1e16 up use exponent notation.
type Decimal float64

func (d Decimal) String() string {
	f := float64(d)
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	f := float64(d)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &strconv.NumError{Func: "MarshalJSON", Num: strconv.FormatFloat(f, 'g', -1, 64), Err: strconv.ErrRange}
	}
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*d = Decimal(f)
	return nil
}
