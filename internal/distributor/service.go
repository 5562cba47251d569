package distributor

import (
	"context"
	"errors"
	"time"

	"pharmachain-backend/internal/models"
	"pharmachain-backend/internal/stats"
	"pharmachain-backend/internal/store"
)

var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrInventoryNotFound = errors.New("inventory item not found")
	ErrUnknownStatus     = errors.New("unknown shipment status")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
)

// Absolute low-stock threshold for the distributor warehouse. The retailer
// uses a per-item minimum instead; the two policies are deliberately
// separate.
const lowStockThreshold = 100

func lowStock(quantity int) bool {
	return quantity < lowStockThreshold
}

// Service owns the distributor collections: incoming shipments and
// warehouse inventory.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) Shipments(ctx context.Context) []models.Shipment {
	return store.Load(ctx, s.store, models.KeyDistributorShipments, models.FixtureShipments())
}

func (s *Service) Inventory(ctx context.Context) []models.InventoryItem {
	return store.Load(ctx, s.store, models.KeyDistributorInventory, models.FixtureInventory())
}

// Validate moves a Pending shipment to Validated and stamps today as the
// validation date. Calling it on a shipment in any other status leaves the
// record untouched; the guarded action exists alongside the freeform edit.
func (s *Service) Validate(ctx context.Context, id int64) (models.Shipment, error) {
	shipments := s.Shipments(ctx)
	idx := indexByID(shipments, id)
	if idx < 0 {
		return models.Shipment{}, ErrShipmentNotFound
	}

	if shipments[idx].Status == models.ShipmentPending {
		shipments[idx].Status = models.ShipmentValidated
		shipments[idx].ValidatedDate = time.Now().Format("2006-01-02")
		if err := store.Save(ctx, s.store, models.KeyDistributorShipments, shipments); err != nil {
			return models.Shipment{}, err
		}
	}
	return shipments[idx], nil
}

// SetStatus is the unguarded status edit: any enumerated value may be set
// from any current value. This bypass of the validate gate is intentional.
func (s *Service) SetStatus(ctx context.Context, id int64, status models.ShipmentStatus) (models.Shipment, error) {
	if !validShipmentStatus(status) {
		return models.Shipment{}, ErrUnknownStatus
	}

	shipments := s.Shipments(ctx)
	idx := indexByID(shipments, id)
	if idx < 0 {
		return models.Shipment{}, ErrShipmentNotFound
	}

	shipments[idx].Status = status
	if err := store.Save(ctx, s.store, models.KeyDistributorShipments, shipments); err != nil {
		return models.Shipment{}, err
	}
	return shipments[idx], nil
}

// UpdateQuantity sets an inventory item's quantity, re-derives the
// low-stock flag against the absolute threshold and stamps today.
func (s *Service) UpdateQuantity(ctx context.Context, id int64, quantity int) (models.InventoryItem, error) {
	if quantity < 0 {
		return models.InventoryItem{}, ErrNegativeQuantity
	}

	inventory := s.Inventory(ctx)
	idx := -1
	for i, item := range inventory {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.InventoryItem{}, ErrInventoryNotFound
	}

	inventory[idx].Quantity = quantity
	inventory[idx].LowStock = lowStock(quantity)
	inventory[idx].LastUpdated = time.Now().Format("2006-01-02")
	if err := store.Save(ctx, s.store, models.KeyDistributorInventory, inventory); err != nil {
		return models.InventoryItem{}, err
	}
	return inventory[idx], nil
}

type Summary struct {
	TotalShipments    int `json:"total_shipments"`
	InTransit         int `json:"in_transit"`
	InventoryItems    int `json:"inventory_items"`
	LowStockItems     int `json:"low_stock_items"`
	PendingValidation int `json:"pending_validation"`
}

func (s *Service) Summary(ctx context.Context) Summary {
	shipments := s.Shipments(ctx)
	inventory := s.Inventory(ctx)

	return Summary{
		TotalShipments: stats.Count(shipments),
		InTransit: stats.CountWhere(shipments, func(sh models.Shipment) bool {
			return sh.Status == models.ShipmentInTransit
		}),
		InventoryItems: stats.Count(inventory),
		LowStockItems: stats.CountWhere(inventory, func(i models.InventoryItem) bool {
			return i.LowStock
		}),
		PendingValidation: stats.CountWhere(shipments, func(sh models.Shipment) bool {
			return sh.Status == models.ShipmentPending
		}),
	}
}

func indexByID(shipments []models.Shipment, id int64) int {
	for i, sh := range shipments {
		if sh.ID == id {
			return i
		}
	}
	return -1
}

func validShipmentStatus(status models.ShipmentStatus) bool {
	for _, known := range models.ShipmentStatuses {
		if known == status {
			return true
		}
	}
	return false
}
