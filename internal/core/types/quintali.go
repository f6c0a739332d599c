package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Quintali is a fixed-point weight in quintals with 2 decimal places (scale = 100).
//
// Rationale:
// - Matches Postgres NUMERIC(10,2) semantics without floating point errors
// - Easy to store as BIGINT in DB (scaled integer)
// - JSON remains a number with up to 2 decimals
type Quintali int64

const QuintaliScale int64 = 100

func NewQuintaliFromFloat64(v float64) Quintali {
	return Quintali(math.Round(v * float64(QuintaliScale)))
}

func NewQuintaliFromInt(v int64) Quintali { return Quintali(v * QuintaliScale) }

func NewQuintaliFromInt64Scaled(v int64) Quintali { return Quintali(v) }

func (q Quintali) Int64Scaled() int64 { return int64(q) }

func (q Quintali) Float64() float64 { return float64(q) / float64(QuintaliScale) }

func (q Quintali) IsZero() bool { return q == 0 }

func (q Quintali) IsPositive() bool { return q > 0 }

func (q Quintali) IsNegative() bool { return q < 0 }

// MulInt scales the weight by an integer factor (e.g. pallet count).
func (q Quintali) MulInt(n int) Quintali { return q * Quintali(n) }

// Decimal converts the fixed-point weight to a decimal for Money math.
func (q Quintali) Decimal() decimal.Decimal {
	return decimal.New(int64(q), -2)
}

func (q Quintali) Abs() Quintali {
	if q < 0 {
		return -q
	}
	return q
}

// String returns a decimal string with 2 fractional digits.
func (q Quintali) String() string {
	neg := q < 0
	v := q
	if neg {
		v = -v
	}
	intPart := int64(v) / QuintaliScale
	frac := int64(v) % QuintaliScale
	if neg {
		return fmt.Sprintf("-%d.%02d", intPart, frac)
	}
	return fmt.Sprintf("%d.%02d", intPart, frac)
}

// MarshalJSON encodes Quintali as JSON number (not string), preserving 2 digits.
func (q Quintali) MarshalJSON() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalJSON accepts either a JSON number or string and parses to fixed-point (2 digits).
func (q *Quintali) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*q = 0
		return nil
	}

	// If string, unquote first.
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := parseQuintaliString(s)
		if err != nil {
			return err
		}
		*q = parsed
		return nil
	}

	// Otherwise treat as number token.
	parsed, err := parseQuintaliString(string(data))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

func parseQuintaliString(s string) (Quintali, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty quintali value")
	}

	// We intentionally do NOT support exponent form to keep parsing strict.
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parse quintali: %w", err)
		}
		return NewQuintaliFromFloat64(f), nil
	}

	sign := int64(1)
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = strings.TrimPrefix(s, "-")
	} else if strings.HasPrefix(s, "+") {
		s = strings.TrimPrefix(s, "+")
	}

	parts := strings.SplitN(s, ".", 2)
	intPartStr := parts[0]
	fracStr := ""
	if len(parts) == 2 {
		fracStr = parts[1]
	}

	if intPartStr == "" {
		intPartStr = "0"
	}
	intPart, err := strconv.ParseInt(intPartStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse quintali integer part: %w", err)
	}

	// Normalize fractional part to 2 digits (pad right, truncate extra digits).
	if len(fracStr) > 2 {
		fracStr = fracStr[:2]
	}
	for len(fracStr) < 2 {
		fracStr += "0"
	}
	frac, err := strconv.ParseInt(fracStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse quintali fractional part: %w", err)
	}

	return Quintali(sign * (intPart*QuintaliScale + frac)), nil
}
