package retailer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pharmachain-backend/internal/audit"
	"pharmachain-backend/internal/auth"
	"pharmachain-backend/internal/models"
	"pharmachain-backend/internal/report"
)

type RecordSaleRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Customer string `json:"customer"`
	Date     string `json:"date"` // optional, defaults to today
}

// GET /api/retailer/sales
func ListSalesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Sales(c.Context()))
	}
}

// POST /api/retailer/sales
func RecordSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		sale, err := svc.RecordSale(c.Context(), body.Product, body.Quantity, body.Customer, body.Date)
		if err != nil {
			switch {
			case errors.Is(err, ErrInsufficientStock):
				return fiber.NewError(fiber.StatusConflict, "Not enough stock available!")
			case errors.Is(err, ErrInvalidSale):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "sale could not be recorded")
			}
		}

		userID, userEmail := auth.SessionUser(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserEmail:   userEmail,
			Role:        models.RoleRetailer,
			EntityType:  "sale",
			EntityID:    sale.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Sale recorded: %s x%d for %s", sale.Product, sale.Quantity, sale.Customer),
			After:       sale,
		})

		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// GET /api/retailer/stock
func ListStockHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Stock(c.Context()))
	}
}

// POST /api/retailer/stock/verify
func VerifyStockHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		low := svc.VerifyStock(c.Context())

		products := make([]string, 0, len(low))
		for _, item := range low {
			products = append(products, item.Product)
		}

		message := "All stock levels are adequate."
		if len(low) > 0 {
			message = "Low stock alert"
		}

		return c.JSON(fiber.Map{
			"message":   message,
			"low_stock": products,
		})
	}
}

// GET /api/retailer/certificates
func ListCertificatesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Certificates(c.Context()))
	}
}

// GET /api/retailer/certificates/:id/download
func DownloadCertificateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		cert, err := svc.Certificate(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}

		c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.CertificateFilename(cert)))
		return c.SendString(report.Certificate(cert))
	}
}

// GET /api/retailer/summary
func SummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Summary(c.Context()))
	}
}
