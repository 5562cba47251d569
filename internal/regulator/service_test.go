package regulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmachain-backend/internal/models"
	"pharmachain-backend/internal/store"
)

func newTestService() *Service {
	return NewService(store.NewMemory())
}

func TestSetDiscrepancyStatusAcceptsAllValuesFromAnyState(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Every enumerated value is settable regardless of the current one,
	// and each write shows up on the very next read.
	for _, status := range models.DiscrepancyStatuses {
		updated, err := svc.SetDiscrepancyStatus(ctx, 1, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
		assert.Equal(t, status, svc.Discrepancies(ctx)[0].Status)
	}
}

func TestSetDiscrepancyStatusRejectsUnknownValue(t *testing.T) {
	_, err := newTestService().SetDiscrepancyStatus(context.Background(), 1, "Escalated")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestSetDiscrepancyStatusUnknownID(t *testing.T) {
	_, err := newTestService().SetDiscrepancyStatus(context.Background(), 42, models.DiscrepancyResolved)
	assert.ErrorIs(t, err, ErrDiscrepancyNotFound)
}

func TestReportInclusiveRange(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Manufacturer dates 05-01, 05-03, 05-05 all fall inside; the report
	// range is inclusive on both boundaries.
	text, filename, err := svc.Report(ctx, "2023-05-01", "2023-05-05")
	require.NoError(t, err)
	assert.Equal(t, "Compliance-Report-2023-05-01-to-2023-05-05.txt", filename)
	assert.Contains(t, text, "Total Products: 3")

	// Narrowing the end below 05-03 drops two records.
	text, _, err = svc.Report(ctx, "2023-05-01", "2023-05-02")
	require.NoError(t, err)
	assert.Contains(t, text, "Total Products: 1")
}

func TestReportRejectsMalformedDates(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Report(context.Background(), "05/01/2023", "2023-05-10")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, _, err = svc.Report(context.Background(), "2023-05-01", "soon")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	got := svc.Summary(ctx)
	assert.Equal(t, Summary{
		ProductsTracked:       3,
		CompleteShipments:     2,
		ActiveDiscrepancies:   1,
		HighSeverity:          0,
		TemperatureExcursions: 1,
	}, got)

	_, err := svc.SetDiscrepancyStatus(ctx, 1, models.DiscrepancyResolved)
	require.NoError(t, err)
	assert.Equal(t, 0, svc.Summary(ctx).ActiveDiscrepancies)
}
