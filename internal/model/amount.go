package model

import (
	"encoding/json"
	"strconv"
)

// Amount is a numeric value that may be missing.
type Amount struct {
	Value float64
	Valid bool
}

// NewAmount returns a present Amount.
func NewAmount(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// Ptr returns nil for a missing amount.
func (a Amount) Ptr() *float64 {
	if !a.Valid {
		return nil
	}
	v := a.Value
	return &v
}

// MarshalJSON encodes a missing amount as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON accepts a number or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Amount{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = NewAmount(v)
	return nil
}

// MarshalText encodes a missing amount as an empty string.
func (a Amount) MarshalText() ([]byte, error) {
	if !a.Valid {
		return []byte{}, nil
	}
	return []byte(strconv.FormatFloat(a.Value, 'f', -1, 64)), nil
}

// MarshalYAML encodes a missing amount as null.
func (a Amount) MarshalYAML() (any, error) {
	if !a.Valid {
		return nil, nil
	}
	return a.Value, nil
}
