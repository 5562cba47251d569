// Package stats computes the dashboard summary metrics. Everything here is
// a pure function over a collection snapshot; nothing is cached, every view
// recomputes from the latest collection.
package stats

import (
	"strings"

	"github.com/shopspring/decimal"
)

func Count[T any](records []T) int {
	return len(records)
}

func CountWhere[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

func SumInt[T any](records []T, field func(T) int) int {
	total := 0
	for _, r := range records {
		total += field(r)
	}
	return total
}

// ParseAmount converts a display amount such as "$5,000" to its numeric
// value. Anything that does not parse after stripping "$" and "," counts
// as zero so a malformed entry can never poison a total.
func ParseAmount(amount string) decimal.Decimal {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(amount)
	d, err := decimal.NewFromString(strings.TrimSpace(cleaned))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SumAmounts totals display amounts across a collection.
func SumAmounts[T any](records []T, field func(T) string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(ParseAmount(field(r)))
	}
	return total
}
