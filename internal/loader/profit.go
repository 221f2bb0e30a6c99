package loader

import (
	"math"
	"strconv"
	"strings"

	"github.com/sells-group/agency-dashboard/internal/model"
)

var profitCleaner = strings.NewReplacer("€", "", ",", "", " ", "")

// CleanProfit strips the currency symbol, thousands separators and spaces
// from a formatted profit value. A period is kept as the decimal point.
func CleanProfit(text string) string {
	return strings.TrimSpace(profitCleaner.Replace(text))
}

// ParseProfit converts formatted profit text to an Amount. Text that is not a
// finite decimal number after cleaning yields a missing Amount.
func ParseProfit(text string) model.Amount {
	cleaned := CleanProfit(text)
	if cleaned == "" || strings.ContainsAny(cleaned, "xX_") {
		return model.Amount{}
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return model.Amount{}
	}
	return model.NewAmount(v)
}
