package annuity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTiming is returned when a payment timing label cannot be parsed.
var ErrUnknownTiming = errors.New("unknown payment timing")

// PaymentTiming says whether a periodic payment is due at the start or at the
// end of each period.
//
// The zero value is End.
type PaymentTiming int

const (
	// End means payments are due at the end of each period (ordinary annuity).
	End PaymentTiming = 0
	// Begin means payments are due at the start of each period (annuity due).
	Begin PaymentTiming = 1
)

// Adjustment is the additive factor applied inside the (1 + rate·adjustment)
// term of the annuity formulas.
func (t PaymentTiming) Adjustment() float64 {
	if t == Begin {
		return 1
	}
	return 0
}

func (t PaymentTiming) String() string {
	if t == Begin {
		return "begin"
	}
	return "end"
}

// ParsePaymentTiming accepts "end", "begin", "start", "0" and "1" (case-insensitive).
// An empty label is End.
func ParsePaymentTiming(s string) (PaymentTiming, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "end", "0":
		return End, nil
	case "begin", "start", "1":
		return Begin, nil
	default:
		return End, fmt.Errorf("%w %q", ErrUnknownTiming, s)
	}
}

// MarshalText writes the timing as "end" or "begin".
func (t PaymentTiming) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts any label ParsePaymentTiming does.
func (t *PaymentTiming) UnmarshalText(text []byte) error {
	v, err := ParsePaymentTiming(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// UnmarshalJSON accepts a label string or the numbers 0 and 1. null leaves t
// unchanged.
func (t *PaymentTiming) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return t.UnmarshalText([]byte(s))
	}
	return t.UnmarshalText(data)
}
