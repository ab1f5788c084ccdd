package money

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a fixed-point currency amount held as a count of minor units
// (two fractional digits). All arithmetic is integer-exact; float64 only
// appears at the serialization boundary.
//
// Storage form: fixed 2-decimal string ("12.34").
// API form: bare JSON number reconstructed from the fixed-point value.
type Amount struct {
	units int64
}

// Zero is the zero amount.
var Zero = Amount{}

func FromMinorUnits(units int64) Amount {
	return Amount{units: units}
}

// FromFloat converts a float to an Amount, rounding half away from zero to
// two fractional digits.
func FromFloat(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Zero
	}
	return Amount{units: int64(math.Round(v * 100))}
}

// Parse reads an amount from text. Both "12.34" and "12,34" are accepted,
// as are plain integers ("12"). Malformed or empty input coerces to zero;
// Parse never fails.
func Parse(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero
	}
	s = strings.ReplaceAll(s, ",", ".")

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return Zero
	}
	if whole == "" {
		whole = "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Zero
	}

	// Keep at most two fractional digits; a third digit rounds half up.
	var f int64
	if frac != "" {
		digits := frac
		if len(digits) > 3 {
			digits = digits[:3]
		}
		fv, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Zero
		}
		switch len(digits) {
		case 1:
			f = fv * 10
		case 2:
			f = fv
		case 3:
			f = (fv + 5) / 10
		}
	}

	units := w*100 + f
	if neg {
		units = -units
	}
	return Amount{units: units}
}

func (a Amount) MinorUnits() int64 { return a.units }

func (a Amount) Add(b Amount) Amount { return Amount{units: a.units + b.units} }
func (a Amount) Sub(b Amount) Amount { return Amount{units: a.units - b.units} }

func Min(a, b Amount) Amount {
	if a.units < b.units {
		return a
	}
	return b
}

// Clamp restricts a to the inclusive range [lo, hi].
func (a Amount) Clamp(lo, hi Amount) Amount {
	if a.units < lo.units {
		return lo
	}
	if a.units > hi.units {
		return hi
	}
	return a
}

func (a Amount) Cmp(b Amount) int {
	switch {
	case a.units < b.units:
		return -1
	case a.units > b.units:
		return 1
	default:
		return 0
	}
}

func (a Amount) IsZero() bool     { return a.units == 0 }
func (a Amount) IsPositive() bool { return a.units > 0 }
func (a Amount) IsNegative() bool { return a.units < 0 }

// String returns the fixed 2-decimal form, e.g. "12.34". This is the
// storage representation.
func (a Amount) String() string {
	units := a.units
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	return sign + strconv.FormatInt(units/100, 10) + "." + pad2(units%100)
}

// Float64 reconstructs the numeric value from the fixed-point form. Only
// for serialization; never fed back into arithmetic.
func (a Amount) Float64() float64 {
	return float64(a.units) / 100
}

// MarshalJSON emits a bare JSON number ("12.34", no quotes).
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a string with dot or comma
// decimal separator. Invalid input coerces to zero, matching Parse.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	*a = Parse(s)
	return nil
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
