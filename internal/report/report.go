// Package report renders the downloadable plain-text artifacts: the
// regulatory compliance report and product compliance certificates.
package report

import (
	"fmt"
	"strings"

	"pharmachain-backend/internal/models"
	"pharmachain-backend/internal/stats"
)

// InRange reports whether an ISO date falls inside [start, end], inclusive
// on both ends. Dates are fixed-format "YYYY-MM-DD" so lexical comparison
// is correct.
func InRange(date, start, end string) bool {
	return date >= start && date <= end
}

// Compliance filters supply-chain records by manufacturer date and
// discrepancies by issue date, then renders the fixed-order summary block.
func Compliance(records []models.SupplyChainRecord, discrepancies []models.Discrepancy, start, end string) string {
	matched := make([]models.SupplyChainRecord, 0, len(records))
	for _, r := range records {
		if InRange(r.ManufacturerDate, start, end) {
			matched = append(matched, r)
		}
	}

	inRangeDiscrepancies := stats.CountWhere(discrepancies, func(d models.Discrepancy) bool {
		return InRange(d.Date, start, end)
	})
	temperatureIssues := stats.CountWhere(discrepancies, func(d models.Discrepancy) bool {
		return strings.Contains(d.Issue, "Temperature") && InRange(d.Date, start, end)
	})

	complete := stats.CountWhere(matched, func(r models.SupplyChainRecord) bool { return r.Status == "Complete" })
	inTransit := stats.CountWhere(matched, func(r models.SupplyChainRecord) bool { return r.Status == "In Transit" })

	return fmt.Sprintf(
		"Regulatory Compliance Report\nPeriod: %s to %s\nTotal Products: %d\nComplete Shipments: %d\nIn Transit Shipments: %d\nTotal Discrepancies: %d\nTemperature Issues: %d",
		start, end, len(matched), complete, inTransit, inRangeDiscrepancies, temperatureIssues,
	)
}

// ComplianceFilename encodes the date range into the download name.
func ComplianceFilename(start, end string) string {
	return fmt.Sprintf("Compliance-Report-%s-to-%s.txt", start, end)
}

// Certificate renders the fixed certificate template. The status line is a
// literal: certificates in this dataset are always verified.
func Certificate(cert models.Certificate) string {
	return fmt.Sprintf(
		"Compliance Certificate\nProduct: %s\nIssue Date: %s\nExpiry Date: %s\nStatus: Verified",
		cert.Product, cert.IssueDate, cert.ExpiryDate,
	)
}

func CertificateFilename(cert models.Certificate) string {
	return fmt.Sprintf("Certificate-%s-%s.txt", cert.Product, cert.IssueDate)
}
