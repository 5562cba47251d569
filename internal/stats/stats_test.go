package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pharmachain-backend/internal/models"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"$5,000", 5000},
		{"$12,500", 12500},
		{"$250", 250},
		{"$1,250,000", 1250000},
		{"$notanumber", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.True(t, ParseAmount(tc.in).Equal(decimal.NewFromInt(tc.want)), "ParseAmount(%q)", tc.in)
	}
}

func TestSumAmountsSkipsMalformedEntries(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: "$5,000"},
		{Amount: "$12,500"},
		{Amount: "$notanumber"},
	}

	total := SumAmounts(transactions, func(tx models.Transaction) string { return tx.Amount })
	assert.True(t, total.Equal(decimal.NewFromInt(17500)), "got %s", total)
}

func TestCountWhere(t *testing.T) {
	logs := models.FixtureProductionLogs()

	completed := CountWhere(logs, func(l models.ProductionLog) bool {
		return l.Status == models.ProductionCompleted
	})
	assert.Equal(t, 2, completed)

	pending := CountWhere(logs, func(l models.ProductionLog) bool {
		return l.Status == models.ProductionPending
	})
	assert.Equal(t, 0, pending)
}

func TestSumInt(t *testing.T) {
	logs := models.FixtureProductionLogs()
	total := SumInt(logs, func(l models.ProductionLog) int { return l.Quantity })
	assert.Equal(t, 3500, total)
}
