package manufacturer

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"pharmachain-backend/internal/audit"
	"pharmachain-backend/internal/auth"
	"pharmachain-backend/internal/models"
)

type CreateProductionRequest struct {
	Product        string `json:"product"`
	Quantity       int    `json:"quantity"`
	BatchNumber    string `json:"batchNumber"`
	ProductionDate string `json:"productionDate"` // "2023-05-15"
}

// GET /api/manufacturer/production-logs
func ListProductionLogsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.ProductionLogs(c.Context()))
	}
}

// POST /api/manufacturer/production-logs
func CreateProductionLogHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		log, tx, err := svc.AddProduction(c.Context(), body.Product, body.Quantity, body.BatchNumber, body.ProductionDate)
		if err != nil {
			if err == ErrInvalidProduction {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "production record could not be saved")
		}

		userID, userEmail := auth.SessionUser(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserEmail:   userEmail,
			Role:        models.RoleManufacturer,
			EntityType:  "production_log",
			EntityID:    log.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Production recorded: %s x%d (%s)", log.Product, log.Quantity, log.BatchNumber),
			After:       log,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"production_log": log,
			"transaction":    tx,
		})
	}
}

// GET /api/manufacturer/transactions
func ListTransactionsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Transactions(c.Context()))
	}
}

// GET /api/manufacturer/summary
func SummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Summary(c.Context()))
	}
}

// GET /api/manufacturer/compliance
func ComplianceStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ComplianceStatus())
	}
}
