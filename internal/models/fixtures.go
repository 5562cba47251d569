package models

// Store keys, one per role x collection pair. The values under these keys
// are the serialized arrays defined in records.go.
const (
	KeyManufacturerProductionLogs = "manufacturerProductionLogs"
	KeyManufacturerTransactions   = "manufacturerTransactions"
	KeyDistributorShipments       = "distributorShipments"
	KeyDistributorInventory       = "distributorInventory"
	KeyRetailerSales              = "retailerSales"
	KeyRetailerStock              = "retailerStock"
	KeyRetailerCertificates       = "retailerCertificates"
	KeyRegulatorSupplyChain       = "regulatorSupplyChain"
	KeyRegulatorDiscrepancies     = "regulatorDiscrepancies"
)

// Default fixtures used when a collection has not been persisted yet (or the
// persisted value is unreadable). Callers must treat these as templates and
// copy before mutating.

func FixtureProductionLogs() []ProductionLog {
	return []ProductionLog{
		{ID: 1, Product: "Vaccine A", Quantity: 1000, Date: "2023-05-15", Status: ProductionCompleted, BatchNumber: "BATCH-001"},
		{ID: 2, Product: "Vaccine B", Quantity: 500, Date: "2023-05-14", Status: ProductionInProgress, BatchNumber: "BATCH-002"},
		{ID: 3, Product: "Medicine X", Quantity: 2000, Date: "2023-05-13", Status: ProductionCompleted, BatchNumber: "BATCH-003"},
	}
}

func FixtureTransactions() []Transaction {
	return []Transaction{
		{ID: 1, Product: "Vaccine A", Quantity: 200, Distributor: "MedSupply Co.", Date: "2023-05-10", Amount: "$5,000"},
		{ID: 2, Product: "Medicine X", Quantity: 500, Distributor: "PharmaDist Inc.", Date: "2023-05-05", Amount: "$12,500"},
		{ID: 3, Product: "Vaccine B", Quantity: 150, Distributor: "HealthCare Distributors", Date: "2023-05-01", Amount: "$3,750"},
	}
}

func FixtureShipments() []Shipment {
	return []Shipment{
		{ID: 1, Product: "Vaccine A", Quantity: 200, Manufacturer: "PharmaCorp", Status: ShipmentPending, ShipmentDate: "2023-05-15"},
		{ID: 2, Product: "Medicine X", Quantity: 500, Manufacturer: "MediProd", Status: ShipmentInTransit, ShipmentDate: "2023-05-14"},
		{ID: 3, Product: "Vaccine B", Quantity: 150, Manufacturer: "HealthSolutions", Status: ShipmentDelivered, ShipmentDate: "2023-05-10"},
	}
}

func FixtureInventory() []InventoryItem {
	return []InventoryItem{
		{ID: 1, Product: "Vaccine A", Quantity: 500, LowStock: false, LastUpdated: "2023-05-15"},
		{ID: 2, Product: "Medicine X", Quantity: 1200, LowStock: false, LastUpdated: "2023-05-14"},
		{ID: 3, Product: "Vaccine B", Quantity: 200, LowStock: true, LastUpdated: "2023-05-13"},
		{ID: 4, Product: "Drug Y", Quantity: 50, LowStock: true, LastUpdated: "2023-05-12"},
	}
}

func FixtureSales() []Sale {
	return []Sale{
		{ID: 1, Product: "Vaccine A", Quantity: 5, Amount: "$250", Date: "2023-05-15", Customer: "Customer A"},
		{ID: 2, Product: "Medicine X", Quantity: 10, Amount: "$500", Date: "2023-05-14", Customer: "Customer B"},
		{ID: 3, Product: "Vaccine B", Quantity: 3, Amount: "$150", Date: "2023-05-13", Customer: "Customer C"},
	}
}

func FixtureStock() []StockItem {
	return []StockItem{
		{ID: 1, Product: "Vaccine A", Quantity: 45, Minimum: 20, LastDelivery: "2023-05-10"},
		{ID: 2, Product: "Medicine X", Quantity: 80, Minimum: 30, LastDelivery: "2023-05-08"},
		{ID: 3, Product: "Vaccine B", Quantity: 15, Minimum: 25, LastDelivery: "2023-05-05"},
		{ID: 4, Product: "Drug Y", Quantity: 35, Minimum: 15, LastDelivery: "2023-05-12"},
	}
}

func FixtureCertificates() []Certificate {
	return []Certificate{
		{ID: 1, Product: "Vaccine A", IssueDate: "2023-01-15", ExpiryDate: "2024-01-15", Verified: true},
		{ID: 2, Product: "Medicine X", IssueDate: "2023-02-20", ExpiryDate: "2024-02-20", Verified: true},
		{ID: 3, Product: "Vaccine B", IssueDate: "2023-03-10", ExpiryDate: "2024-03-10", Verified: true},
	}
}

func FixtureSupplyChain() []SupplyChainRecord {
	return []SupplyChainRecord{
		{
			ID: 1, Product: "Vaccine A", Batch: "BATCH-001",
			Manufacturer: "PharmaCorp", ManufacturerDate: "2023-05-01",
			Distributor: "MedSupply Co.", DistributorDate: "2023-05-10",
			Retailer: "HealthPlus Pharmacy", RetailerDate: "2023-05-15",
			Status: "Complete", Temperature: "2-8°C", Discrepancies: 0,
		},
		{
			ID: 2, Product: "Medicine X", Batch: "BATCH-002",
			Manufacturer: "MediProd", ManufacturerDate: "2023-05-05",
			Distributor: "PharmaDist Inc.", DistributorDate: "2023-05-12",
			Retailer: "QuickMeds", RetailerDate: "2023-05-18",
			Status: "In Transit", Temperature: "15-25°C", Discrepancies: 1,
		},
		{
			ID: 3, Product: "Vaccine B", Batch: "BATCH-003",
			Manufacturer: "HealthSolutions", ManufacturerDate: "2023-05-03",
			Distributor: "HealthCare Distributors", DistributorDate: "2023-05-11",
			Retailer: "Community Pharmacy", RetailerDate: "2023-05-16",
			Status: "Complete", Temperature: "2-8°C", Discrepancies: 0,
		},
	}
}

func FixtureDiscrepancies() []Discrepancy {
	return []Discrepancy{
		{ID: 1, Product: "Medicine X", Batch: "BATCH-002", Issue: "Temperature excursion", Severity: "Medium", Status: DiscrepancyUnderInvestigation, Date: "2023-05-13"},
		{ID: 2, Product: "Drug Y", Batch: "BATCH-005", Issue: "Labeling error", Severity: "Low", Status: DiscrepancyResolved, Date: "2023-05-08"},
		{ID: 3, Product: "Vaccine A", Batch: "BATCH-001", Issue: "Delivery delay", Severity: "Low", Status: DiscrepancyResolved, Date: "2023-05-06"},
	}
}
