package models

// Dashboard records are flat JSON documents persisted as whole collections
// in the key-value store, not as relational rows. Field names follow the
// serialized collection format.

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "Pending"
	ShipmentValidated ShipmentStatus = "Validated"
	ShipmentInTransit ShipmentStatus = "In Transit"
	ShipmentDelivered ShipmentStatus = "Delivered"
)

// ShipmentStatuses is the ordered progression a shipment moves through.
// The freeform status edit accepts any of these regardless of the current
// value; only the dedicated validate action is gated.
var ShipmentStatuses = []ShipmentStatus{
	ShipmentPending,
	ShipmentValidated,
	ShipmentInTransit,
	ShipmentDelivered,
}

// Shipment: incoming shipment awaiting validation at the distributor.
type Shipment struct {
	ID            int64          `json:"id"`
	Product       string         `json:"product"`
	Quantity      int            `json:"quantity"`
	Manufacturer  string         `json:"manufacturer"`
	Status        ShipmentStatus `json:"status"`
	ShipmentDate  string         `json:"shipmentDate"`
	ValidatedDate string         `json:"validatedDate,omitempty"`
}

// InventoryItem: distributor warehouse stock. LowStock is derived from the
// absolute 100-unit threshold and re-derived on every quantity edit.
type InventoryItem struct {
	ID          int64  `json:"id"`
	Product     string `json:"product"`
	Quantity    int    `json:"quantity"`
	LowStock    bool   `json:"lowStock"`
	LastUpdated string `json:"lastUpdated"`
}

type ProductionStatus string

const (
	ProductionPending    ProductionStatus = "Pending"
	ProductionInProgress ProductionStatus = "In Progress"
	ProductionCompleted  ProductionStatus = "Completed"
)

// ProductionLog: one manufacturing run. Created with status Pending and
// never advanced by any dashboard action.
type ProductionLog struct {
	ID          int64            `json:"id"`
	Product     string           `json:"product"`
	Quantity    int              `json:"quantity"`
	Date        string           `json:"date"`
	Status      ProductionStatus `json:"status"`
	BatchNumber string           `json:"batchNumber"`
}

// Transaction: manufacturer revenue entry, created 1:1 with a production
// log. Amount is a display string like "$5,000".
type Transaction struct {
	ID          int64  `json:"id"`
	Product     string `json:"product"`
	Quantity    int    `json:"quantity"`
	Distributor string `json:"distributor"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
}

type DiscrepancyStatus string

const (
	DiscrepancyUnderInvestigation DiscrepancyStatus = "Under Investigation"
	DiscrepancyActionRequired     DiscrepancyStatus = "Action Required"
	DiscrepancyResolved           DiscrepancyStatus = "Resolved"
)

var DiscrepancyStatuses = []DiscrepancyStatus{
	DiscrepancyUnderInvestigation,
	DiscrepancyActionRequired,
	DiscrepancyResolved,
}

// Discrepancy: a reported supply-chain issue monitored by the regulator.
type Discrepancy struct {
	ID       int64             `json:"id"`
	Product  string            `json:"product"`
	Batch    string            `json:"batch"`
	Issue    string            `json:"issue"`
	Severity string            `json:"severity"`
	Status   DiscrepancyStatus `json:"status"`
	Date     string            `json:"date"`
}

// SupplyChainRecord: end-to-end trace of one batch. Read-only for the
// regulator; only report generation consumes it.
type SupplyChainRecord struct {
	ID               int64  `json:"id"`
	Product          string `json:"product"`
	Batch            string `json:"batch"`
	Manufacturer     string `json:"manufacturer"`
	ManufacturerDate string `json:"manufacturerDate"`
	Distributor      string `json:"distributor"`
	DistributorDate  string `json:"distributorDate"`
	Retailer         string `json:"retailer"`
	RetailerDate     string `json:"retailerDate"`
	Status           string `json:"status"`
	Temperature      string `json:"temperature"`
	Discrepancies    int    `json:"discrepancies"`
}

// Sale: a retail sale. Recording one decrements the matching stock item.
type Sale struct {
	ID       int64  `json:"id"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Customer string `json:"customer"`
}

// StockItem: retailer shelf stock with a per-item restock minimum.
type StockItem struct {
	ID           int64  `json:"id"`
	Product      string `json:"product"`
	Quantity     int    `json:"quantity"`
	Minimum      int    `json:"minimum"`
	LastDelivery string `json:"lastDelivery"`
}

// Certificate: product compliance certificate, always verified in this
// dataset.
type Certificate struct {
	ID         int64  `json:"id"`
	Product    string `json:"product"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate"`
	Verified   bool   `json:"verified"`
}
