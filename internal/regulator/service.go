package regulator

import (
	"context"
	"errors"
	"strings"

	"pharmachain-backend/internal/models"
	"pharmachain-backend/internal/report"
	"pharmachain-backend/internal/stats"
	"pharmachain-backend/internal/store"
)

var (
	ErrDiscrepancyNotFound = errors.New("discrepancy not found")
	ErrUnknownStatus       = errors.New("unknown discrepancy status")
	ErrInvalidRange        = errors.New("start and end dates are required as YYYY-MM-DD")
)

// Service owns the regulator collections: the read-only supply-chain trace
// and the discrepancy register.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) SupplyChain(ctx context.Context) []models.SupplyChainRecord {
	return store.Load(ctx, s.store, models.KeyRegulatorSupplyChain, models.FixtureSupplyChain())
}

func (s *Service) Discrepancies(ctx context.Context) []models.Discrepancy {
	return store.Load(ctx, s.store, models.KeyRegulatorDiscrepancies, models.FixtureDiscrepancies())
}

// SetDiscrepancyStatus sets any of the three enumerated values from any
// current value; there is no transition guard on this path.
func (s *Service) SetDiscrepancyStatus(ctx context.Context, id int64, status models.DiscrepancyStatus) (models.Discrepancy, error) {
	if !validDiscrepancyStatus(status) {
		return models.Discrepancy{}, ErrUnknownStatus
	}

	discrepancies := s.Discrepancies(ctx)
	idx := -1
	for i, d := range discrepancies {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Discrepancy{}, ErrDiscrepancyNotFound
	}

	discrepancies[idx].Status = status
	if err := store.Save(ctx, s.store, models.KeyRegulatorDiscrepancies, discrepancies); err != nil {
		return models.Discrepancy{}, err
	}
	return discrepancies[idx], nil
}

// Report renders the compliance report for [start, end] and returns the
// text with its download filename.
func (s *Service) Report(ctx context.Context, start, end string) (text, filename string, err error) {
	if !validISODate(start) || !validISODate(end) {
		return "", "", ErrInvalidRange
	}
	text = report.Compliance(s.SupplyChain(ctx), s.Discrepancies(ctx), start, end)
	return text, report.ComplianceFilename(start, end), nil
}

type Summary struct {
	ProductsTracked       int `json:"products_tracked"`
	CompleteShipments     int `json:"complete_shipments"`
	ActiveDiscrepancies   int `json:"active_discrepancies"`
	HighSeverity          int `json:"high_severity"`
	TemperatureExcursions int `json:"temperature_excursions"`
}

func (s *Service) Summary(ctx context.Context) Summary {
	records := s.SupplyChain(ctx)
	discrepancies := s.Discrepancies(ctx)

	return Summary{
		ProductsTracked: stats.Count(records),
		CompleteShipments: stats.CountWhere(records, func(r models.SupplyChainRecord) bool {
			return r.Status == "Complete"
		}),
		ActiveDiscrepancies: stats.CountWhere(discrepancies, func(d models.Discrepancy) bool {
			return d.Status != models.DiscrepancyResolved
		}),
		HighSeverity: stats.CountWhere(discrepancies, func(d models.Discrepancy) bool {
			return d.Severity == "High"
		}),
		TemperatureExcursions: stats.CountWhere(discrepancies, func(d models.Discrepancy) bool {
			return strings.Contains(d.Issue, "Temperature")
		}),
	}
}

func validDiscrepancyStatus(status models.DiscrepancyStatus) bool {
	for _, known := range models.DiscrepancyStatuses {
		if known == status {
			return true
		}
	}
	return false
}

// validISODate checks the fixed "YYYY-MM-DD" shape; range comparison
// itself is lexical.
func validISODate(date string) bool {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return false
	}
	for i, ch := range date {
		if i == 4 || i == 7 {
			continue
		}
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
