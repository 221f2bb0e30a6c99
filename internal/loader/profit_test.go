package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanProfit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"€1,234 ", "1234"},
		{"€12,345", "12345"},
		{"€ 45.000", "45.000"},
		{" € 1,234,567 ", "1234567"},
		{"\t€-2,500\n", "-2500"},
		{"N/A", "N/A"},
		{"", ""},
		{"€ 1.234,56", "1.23456"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CleanProfit(tt.in))
		})
	}
}

func TestParseProfit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		want  float64
		valid bool
	}{
		{"symbol comma trailing space", "€1,234 ", 1234, true},
		{"plain", "98765", 98765, true},
		{"decimal point kept", "€ 45.000", 45, true},
		{"negative", "€-12,000", -12000, true},
		{"fraction", "€1,234.50", 1234.5, true},
		{"comma decimal misread", "€ 1.234,56", 1.23456, true},
		{"not available", "N/A", 0, false},
		{"empty", "", 0, false},
		{"only symbol", "€", 0, false},
		{"nan text", "nan", 0, false},
		{"infinity", "inf", 0, false},
		{"negative infinity", "-Infinity", 0, false},
		{"signed inf with symbol", "€ +Inf", 0, false},
		{"hex float", "0x1p4", 0, false},
		{"letters", "about €5k", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseProfit(tt.in)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.InDelta(t, tt.want, got.Value, 1e-9)
			}
		})
	}
}
