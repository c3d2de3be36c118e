// Package types provides common type aliases and utilities.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// LineAmount returns quantity × unit price.
func LineAmount(quantity int, unitPrice Money) Money {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// WireMoney is Money in the shape the sales backend exchanges it.
// It encodes as a bare JSON number and decodes numbers, numeric strings and null.
type WireMoney decimal.Decimal

// NewWireMoney converts Money for a payload.
func NewWireMoney(m Money) WireMoney {
	return WireMoney(m)
}

// Money returns the decimal value.
func (w WireMoney) Money() Money {
	return decimal.Decimal(w)
}

// MarshalJSON encodes WireMoney as JSON number (not string).
func (w WireMoney) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(w).String()), nil
}

// UnmarshalJSON accepts either a JSON number or string.
func (w *WireMoney) UnmarshalJSON(data []byte) error {
	s, err := scalarToken(data)
	if err != nil {
		return err
	}
	if s == "" {
		*w = WireMoney(decimal.Zero)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parse money %q: %w", s, err)
	}
	*w = WireMoney(d)
	return nil
}

// Count is a whole quantity as exchanged with the backend.
// Decodes integers, integral floats ("3.0") and numeric strings.
type Count int

// MarshalJSON encodes Count as JSON number.
func (c Count) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalJSON accepts either a JSON number or string.
func (c *Count) UnmarshalJSON(data []byte) error {
	s, err := scalarToken(data)
	if err != nil {
		return err
	}
	if s == "" {
		*c = 0
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parse count %q: %w", s, err)
	}
	if !d.IsInteger() {
		return fmt.Errorf("parse count %q: not a whole number", s)
	}
	*c = Count(d.IntPart())
	return nil
}

// scalarToken unquotes a JSON scalar. null and empty strings yield "".
func scalarToken(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}
