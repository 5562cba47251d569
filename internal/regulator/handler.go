package regulator

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"pharmachain-backend/internal/audit"
	"pharmachain-backend/internal/auth"
	"pharmachain-backend/internal/models"
)

type UpdateDiscrepancyStatusRequest struct {
	Status models.DiscrepancyStatus `json:"status"`
}

// GET /api/regulator/supply-chain
func ListSupplyChainHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.SupplyChain(c.Context()))
	}
}

// GET /api/regulator/discrepancies
func ListDiscrepanciesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Discrepancies(c.Context()))
	}
}

// PUT /api/regulator/discrepancies/:id/status
func UpdateDiscrepancyStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		var body UpdateDiscrepancyStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		discrepancy, err := svc.SetDiscrepancyStatus(c.Context(), id, body.Status)
		if err != nil {
			switch {
			case errors.Is(err, ErrDiscrepancyNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrUnknownStatus):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "discrepancy status could not be updated")
			}
		}

		userID, userEmail := auth.SessionUser(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserEmail:   userEmail,
			Role:        models.RoleRegulator,
			EntityType:  "discrepancy",
			EntityID:    discrepancy.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Discrepancy %s (%s) set to %s", discrepancy.Issue, discrepancy.Batch, discrepancy.Status),
			After:       discrepancy,
		})

		return c.JSON(discrepancy)
	}
}

// GET /api/regulator/report?start=2023-05-01&end=2023-05-10
// End defaults to today when omitted, matching the dashboard's default
// reporting range.
func GenerateReportHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := c.Query("start", "2023-05-01")
		end := c.Query("end", time.Now().Format("2006-01-02"))

		text, filename, err := svc.Report(c.Context(), start, end)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.SendString(text)
	}
}

// GET /api/regulator/summary
func SummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Summary(c.Context()))
	}
}
