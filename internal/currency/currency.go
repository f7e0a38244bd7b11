// Package currency converts between a fixed set of currencies using a
// static rate table. Rates are not real-time: the widget works fully
// offline.
package currency

import (
	"fmt"
	"sort"
	"strings"
)

var exchangeRates = map[string]map[string]float64{
	"USD": {"EUR": 0.93, "GBP": 0.79, "JPY": 156.90, "CAD": 1.37, "USD": 1},
	"EUR": {"USD": 1.07, "GBP": 0.85, "JPY": 168.45, "CAD": 1.47, "EUR": 1},
	"GBP": {"USD": 1.27, "EUR": 1.18, "JPY": 198.05, "CAD": 1.73, "GBP": 1},
	"JPY": {"USD": 0.0064, "EUR": 0.0059, "GBP": 0.0050, "CAD": 0.0087, "JPY": 1},
	"CAD": {"USD": 0.73, "EUR": 0.68, "GBP": 0.58, "JPY": 114.70, "CAD": 1},
}

// Codes returns the supported currency codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(exchangeRates))
	for c := range exchangeRates {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Convert converts a positive amount between two supported currencies.
func Convert(amount float64, from, to string) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %g", amount)
	}

	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	rates, ok := exchangeRates[from]
	if !ok {
		return 0, fmt.Errorf("unsupported currency %q (supported: %s)", from, strings.Join(Codes(), ", "))
	}
	rate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("unsupported currency %q (supported: %s)", to, strings.Join(Codes(), ", "))
	}

	return amount * rate, nil
}
