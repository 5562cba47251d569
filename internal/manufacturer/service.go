package manufacturer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pharmachain-backend/internal/models"
	"pharmachain-backend/internal/stats"
	"pharmachain-backend/internal/store"
)

var ErrInvalidProduction = errors.New("product, quantity, batch number and date are required")

// Revenue per produced unit when recording the paired transaction.
const unitPrice = 25

// Service owns the manufacturer collections: production logs and the
// transaction history, one transaction recorded per production entry.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) ProductionLogs(ctx context.Context) []models.ProductionLog {
	return store.Load(ctx, s.store, models.KeyManufacturerProductionLogs, models.FixtureProductionLogs())
}

func (s *Service) Transactions(ctx context.Context) []models.Transaction {
	return store.Load(ctx, s.store, models.KeyManufacturerTransactions, models.FixtureTransactions())
}

// AddProduction prepends a new production log with status Pending and
// records the paired internal transaction dated today. IDs are
// timestamp-derived, the transaction offset by one to stay unique.
func (s *Service) AddProduction(ctx context.Context, product string, quantity int, batchNumber, date string) (models.ProductionLog, models.Transaction, error) {
	if product == "" || quantity <= 0 || batchNumber == "" || date == "" {
		return models.ProductionLog{}, models.Transaction{}, ErrInvalidProduction
	}

	now := time.Now()
	log := models.ProductionLog{
		ID:          now.UnixMilli(),
		Product:     product,
		Quantity:    quantity,
		Date:        date,
		BatchNumber: batchNumber,
		Status:      models.ProductionPending,
	}
	tx := models.Transaction{
		ID:          now.UnixMilli() + 1,
		Product:     product,
		Quantity:    quantity,
		Distributor: "Internal Production",
		Date:        now.Format("2006-01-02"),
		Amount:      fmt.Sprintf("$%d", quantity*unitPrice),
	}

	logs := append([]models.ProductionLog{log}, s.ProductionLogs(ctx)...)
	if err := store.Save(ctx, s.store, models.KeyManufacturerProductionLogs, logs); err != nil {
		return models.ProductionLog{}, models.Transaction{}, err
	}

	transactions := append([]models.Transaction{tx}, s.Transactions(ctx)...)
	if err := store.Save(ctx, s.store, models.KeyManufacturerTransactions, transactions); err != nil {
		return models.ProductionLog{}, models.Transaction{}, err
	}

	return log, tx, nil
}

type Summary struct {
	TotalProductionUnits int             `json:"total_production_units"`
	PendingOrders        int             `json:"pending_orders"`
	Revenue              decimal.Decimal `json:"revenue"`
}

func (s *Service) Summary(ctx context.Context) Summary {
	logs := s.ProductionLogs(ctx)
	transactions := s.Transactions(ctx)

	return Summary{
		TotalProductionUnits: stats.SumInt(logs, func(l models.ProductionLog) int { return l.Quantity }),
		PendingOrders: stats.CountWhere(logs, func(l models.ProductionLog) bool {
			return l.Status == models.ProductionPending
		}),
		Revenue: stats.SumAmounts(transactions, func(tx models.Transaction) string { return tx.Amount }),
	}
}

// ComplianceStatus is the static certification block shown on the
// manufacturer dashboard.
func ComplianceStatus() map[string]string {
	return map[string]string{
		"fda": "Compliant",
		"who": "Compliant",
		"iso": "Compliant - Certificate expires 2024-06-30",
		"gmp": "Compliant - Last audit: 2023-04-15",
	}
}
