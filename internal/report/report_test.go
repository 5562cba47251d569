package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pharmachain-backend/internal/models"
)

func TestInRangeBoundariesInclusive(t *testing.T) {
	assert.True(t, InRange("2023-05-01", "2023-05-01", "2023-05-10"))
	assert.True(t, InRange("2023-05-10", "2023-05-01", "2023-05-10"))
	assert.True(t, InRange("2023-05-05", "2023-05-01", "2023-05-10"))
	assert.False(t, InRange("2023-04-30", "2023-05-01", "2023-05-10"))
	assert.False(t, InRange("2023-05-11", "2023-05-01", "2023-05-10"))
}

func TestComplianceFiltersByManufacturerDate(t *testing.T) {
	// Fixture manufacturer dates: 05-01, 05-05, 05-03. Discrepancy dates:
	// 05-13, 05-08, 05-06.
	text := Compliance(models.FixtureSupplyChain(), models.FixtureDiscrepancies(), "2023-05-01", "2023-05-10")

	assert.Equal(t,
		"Regulatory Compliance Report\n"+
			"Period: 2023-05-01 to 2023-05-10\n"+
			"Total Products: 3\n"+
			"Complete Shipments: 2\n"+
			"In Transit Shipments: 1\n"+
			"Total Discrepancies: 2\n"+
			"Temperature Issues: 0",
		text)
}

func TestComplianceCountsTemperatureIssuesInRange(t *testing.T) {
	text := Compliance(models.FixtureSupplyChain(), models.FixtureDiscrepancies(), "2023-05-01", "2023-05-15")
	assert.Contains(t, text, "Total Discrepancies: 3")
	assert.Contains(t, text, "Temperature Issues: 1")
}

func TestComplianceEmptyRange(t *testing.T) {
	text := Compliance(models.FixtureSupplyChain(), models.FixtureDiscrepancies(), "2024-01-01", "2024-12-31")
	assert.Contains(t, text, "Total Products: 0")
	assert.Contains(t, text, "Complete Shipments: 0")
	assert.Contains(t, text, "Total Discrepancies: 0")
}

func TestComplianceFilename(t *testing.T) {
	assert.Equal(t, "Compliance-Report-2023-05-01-to-2023-05-10.txt", ComplianceFilename("2023-05-01", "2023-05-10"))
}

func TestCertificateTemplate(t *testing.T) {
	cert := models.Certificate{ID: 1, Product: "Vaccine A", IssueDate: "2023-01-15", ExpiryDate: "2024-01-15", Verified: true}

	assert.Equal(t,
		"Compliance Certificate\n"+
			"Product: Vaccine A\n"+
			"Issue Date: 2023-01-15\n"+
			"Expiry Date: 2024-01-15\n"+
			"Status: Verified",
		Certificate(cert))
	assert.Equal(t, "Certificate-Vaccine A-2023-01-15.txt", CertificateFilename(cert))
}
