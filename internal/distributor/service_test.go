package distributor

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

func TestValidateFromPending(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Fixture shipment 1 is Pending.
	shipment, err := svc.Validate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentValidated, shipment.Status)
	assert.NotEmpty(t, shipment.ValidatedDate)

	// Persisted on the next read.
	assert.Equal(t, models.ShipmentValidated, svc.Shipments(ctx)[0].Status)
}

func TestValidateIsNoOpWhenNotPending(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Fixture shipment 3 is Delivered.
	shipment, err := svc.Validate(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentDelivered, shipment.Status)
	assert.Empty(t, shipment.ValidatedDate)
}

func TestValidateUnknownShipment(t *testing.T) {
	_, err := newTestService().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestSetStatusIsUnguarded(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// The freeform edit moves backwards without complaint; the guarded
	// validate action is a separate path on purpose.
	shipment, err := svc.SetStatus(ctx, 3, models.ShipmentPending)
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentPending, shipment.Status)

	shipment, err = svc.SetStatus(ctx, 3, models.ShipmentDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentDelivered, shipment.Status)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	_, err := newTestService().SetStatus(context.Background(), 1, "Lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateQuantityDerivesLowStock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Strict threshold: 99 is low, 100 is not.
	item, err := svc.UpdateQuantity(ctx, 1, 99)
	require.NoError(t, err)
	assert.True(t, item.LowStock)
	assert.NotEmpty(t, item.LastUpdated)

	item, err = svc.UpdateQuantity(ctx, 1, 100)
	require.NoError(t, err)
	assert.False(t, item.LowStock)
}

func TestUpdateQuantityRejectsNegative(t *testing.T) {
	_, err := newTestService().UpdateQuantity(context.Background(), 1, -1)
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	got := svc.Summary(ctx)
	assert.Equal(t, Summary{
		TotalShipments:    3,
		InTransit:         1,
		InventoryItems:    4,
		LowStockItems:     2,
		PendingValidation: 1,
	}, got)

	_, err := svc.Validate(ctx, 1)
	require.NoError(t, err)

	got = svc.Summary(ctx)
	assert.Equal(t, 0, got.PendingValidation)
}
