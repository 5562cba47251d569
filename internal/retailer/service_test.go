package retailer

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmachain-backend/internal/models"
	"pharmachain-backend/internal/store"
)

func newTestService() *Service {
	return NewService(store.NewMemory())
}

func stockFor(t *testing.T, svc *Service, product string) models.StockItem {
	t.Helper()
	for _, item := range svc.Stock(context.Background()) {
		if item.Product == product {
			return item
		}
	}
	t.Fatalf("no stock item for %s", product)
	return models.StockItem{}
}

func TestRecordSaleDecrementsStock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	sale, err := svc.RecordSale(ctx, "Vaccine A", 5, "Customer D", "2023-05-20")
	require.NoError(t, err)
	assert.Equal(t, "$250", sale.Amount)
	assert.Equal(t, "2023-05-20", sale.Date)

	assert.Equal(t, 40, stockFor(t, svc, "Vaccine A").Quantity)

	sales := svc.Sales(ctx)
	require.Len(t, sales, 4)
	assert.Equal(t, sale, sales[0])
}

func TestRecordSaleExactlyAvailableEmptiesShelf(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Vaccine A fixture quantity is 45; selling all 45 is allowed.
	_, err := svc.RecordSale(ctx, "Vaccine A", 45, "Customer D", "")
	require.NoError(t, err)
	assert.Equal(t, 0, stockFor(t, svc, "Vaccine A").Quantity)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.RecordSale(ctx, "Vaccine A", 46, "Customer D", "")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// No mutation on either collection.
	assert.Equal(t, 45, stockFor(t, svc, "Vaccine A").Quantity)
	assert.Len(t, svc.Sales(ctx), 3)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	_, err := newTestService().RecordSale(context.Background(), "Mystery Pill", 1, "Customer D", "")
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestRecordSaleDefaultsDateToToday(t *testing.T) {
	svc := newTestService()
	sale, err := svc.RecordSale(context.Background(), "Medicine X", 2, "Customer E", "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), sale.Date)
}

func TestVerifyStockUsesPerItemMinimum(t *testing.T) {
	svc := newTestService()

	low := svc.VerifyStock(context.Background())
	// Only Vaccine B (15 < 25) is below its own minimum in the fixture.
	require.Len(t, low, 1)
	assert.Equal(t, "Vaccine B", low[0].Product)
}

func TestCertificateLookup(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	cert, err := svc.Certificate(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Medicine X", cert.Product)

	_, err = svc.Certificate(ctx, 99)
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestSummaryCountsTodayOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Fixture sales are all dated 2023-05; nothing counts as today.
	got := svc.Summary(ctx)
	assert.True(t, got.TodaySalesTotal.Equal(decimal.Zero))
	assert.Equal(t, 0, got.TodayTransactions)
	assert.Equal(t, 4, got.TotalProducts)
	assert.Equal(t, 1, got.NeedRestocking)
	assert.Equal(t, 3, got.Certificates)

	_, err := svc.RecordSale(ctx, "Medicine X", 4, "Customer E", "")
	require.NoError(t, err)

	got = svc.Summary(ctx)
	assert.True(t, got.TodaySalesTotal.Equal(decimal.NewFromInt(200)), "total %s", got.TodaySalesTotal)
	assert.Equal(t, 1, got.TodayTransactions)
}
