package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pharmachain-backend/internal/models"
)

func newTestGorm(t *testing.T) *Gorm {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s, err := NewGorm(db)
	require.NoError(t, err)
	return s
}

func TestGormGetMissingKey(t *testing.T) {
	s := newTestGorm(t)

	_, ok, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGormRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestGorm(t)

	logs := models.FixtureProductionLogs()
	require.NoError(t, Save(ctx, s, models.KeyManufacturerProductionLogs, logs))

	got := Load[models.ProductionLog](ctx, s, models.KeyManufacturerProductionLogs, nil)
	assert.Equal(t, logs, got)
}

func TestGormPutOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestGorm(t)

	require.NoError(t, s.Put(ctx, "k", []byte(`[1]`)))
	require.NoError(t, s.Put(ctx, "k", []byte(`[2]`)))

	raw, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[2]`), raw)
}
