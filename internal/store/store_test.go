package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmachain-backend/internal/models"
)

func TestLoadReturnsFixtureWhenAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	got := Load(ctx, s, models.KeyRetailerStock, models.FixtureStock())
	assert.Equal(t, models.FixtureStock(), got)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	stock := models.FixtureStock()
	stock[0].Quantity = 7
	require.NoError(t, Save(ctx, s, models.KeyRetailerStock, stock))

	got := Load(ctx, s, models.KeyRetailerStock, models.FixtureStock())
	assert.Equal(t, stock, got)
}

func TestLoadFallsBackOnCorruptedValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Put(ctx, models.KeyRetailerStock, []byte("{not json")))

	got := Load(ctx, s, models.KeyRetailerStock, models.FixtureStock())
	assert.Equal(t, models.FixtureStock(), got)
}

func TestSaveOverwritesPriorValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	first := []models.Sale{{ID: 1, Product: "Vaccine A", Quantity: 2, Amount: "$100", Date: "2023-05-15", Customer: "Customer A"}}
	second := []models.Sale{{ID: 2, Product: "Medicine X", Quantity: 1, Amount: "$50", Date: "2023-05-16", Customer: "Customer B"}}

	require.NoError(t, Save(ctx, s, models.KeyRetailerSales, first))
	require.NoError(t, Save(ctx, s, models.KeyRetailerSales, second))

	got := Load[models.Sale](ctx, s, models.KeyRetailerSales, nil)
	assert.Equal(t, second, got)
}

func TestCollectionsAreIndependentlyNamespaced(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, Save(ctx, s, models.KeyDistributorShipments, models.FixtureShipments()))

	// Writing shipments must not establish a value for inventory.
	got := Load(ctx, s, models.KeyDistributorInventory, models.FixtureInventory())
	assert.Equal(t, models.FixtureInventory(), got)
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	value := []byte(`[{"id":1}]`)
	require.NoError(t, s.Put(ctx, "k", value))
	value[0] = 'x'

	raw, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), raw)
}
