package retailer

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

var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidSale         = errors.New("product, quantity and customer are required")
	ErrCertificateNotFound = errors.New("certificate not found")
)

// Sale price per unit when recording a transaction.
const unitPrice = 50

// needsRestock is the retailer low-stock policy: below the item's own
// minimum, not the distributor's absolute threshold.
func needsRestock(item models.StockItem) bool {
	return item.Quantity < item.Minimum
}

// Service owns the retailer collections: sales history, shelf stock and
// compliance certificates.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) Sales(ctx context.Context) []models.Sale {
	return store.Load(ctx, s.store, models.KeyRetailerSales, models.FixtureSales())
}

func (s *Service) Stock(ctx context.Context) []models.StockItem {
	return store.Load(ctx, s.store, models.KeyRetailerStock, models.FixtureStock())
}

func (s *Service) Certificates(ctx context.Context) []models.Certificate {
	return store.Load(ctx, s.store, models.KeyRetailerCertificates, models.FixtureCertificates())
}

// RecordSale logs a sale and decrements the matching stock item. A request
// for more than the available quantity is rejected without touching either
// collection; selling exactly the available quantity empties the shelf.
func (s *Service) RecordSale(ctx context.Context, product string, quantity int, customer, date string) (models.Sale, error) {
	if product == "" || quantity <= 0 || customer == "" {
		return models.Sale{}, ErrInvalidSale
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	stock := s.Stock(ctx)
	idx := -1
	for i, item := range stock {
		if item.Product == product {
			idx = i
			break
		}
	}
	if idx < 0 || stock[idx].Quantity < quantity {
		return models.Sale{}, ErrInsufficientStock
	}

	sale := models.Sale{
		ID:       time.Now().UnixMilli(),
		Product:  product,
		Quantity: quantity,
		Amount:   fmt.Sprintf("$%d", quantity*unitPrice),
		Date:     date,
		Customer: customer,
	}

	sales := append([]models.Sale{sale}, s.Sales(ctx)...)
	if err := store.Save(ctx, s.store, models.KeyRetailerSales, sales); err != nil {
		return models.Sale{}, err
	}

	stock[idx].Quantity -= quantity
	if err := store.Save(ctx, s.store, models.KeyRetailerStock, stock); err != nil {
		return models.Sale{}, err
	}

	return sale, nil
}

// VerifyStock returns the items currently below their restock minimum.
func (s *Service) VerifyStock(ctx context.Context) []models.StockItem {
	var low []models.StockItem
	for _, item := range s.Stock(ctx) {
		if needsRestock(item) {
			low = append(low, item)
		}
	}
	return low
}

func (s *Service) Certificate(ctx context.Context, id int64) (models.Certificate, error) {
	for _, cert := range s.Certificates(ctx) {
		if cert.ID == id {
			return cert, nil
		}
	}
	return models.Certificate{}, ErrCertificateNotFound
}

type Summary struct {
	TodaySalesTotal   decimal.Decimal `json:"today_sales_total"`
	TodayTransactions int             `json:"today_transactions"`
	TotalProducts     int             `json:"total_products"`
	NeedRestocking    int             `json:"need_restocking"`
	Certificates      int             `json:"certificates"`
}

func (s *Service) Summary(ctx context.Context) Summary {
	sales := s.Sales(ctx)
	stock := s.Stock(ctx)
	today := time.Now().Format("2006-01-02")

	var todaySales []models.Sale
	for _, sale := range sales {
		if sale.Date == today {
			todaySales = append(todaySales, sale)
		}
	}

	return Summary{
		TodaySalesTotal:   stats.SumAmounts(todaySales, func(sale models.Sale) string { return sale.Amount }),
		TodayTransactions: stats.Count(todaySales),
		TotalProducts:     stats.Count(stock),
		NeedRestocking:    stats.CountWhere(stock, needsRestock),
		Certificates:      stats.Count(s.Certificates(ctx)),
	}
}
