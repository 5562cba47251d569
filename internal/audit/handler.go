package audit

import (
	"github.com/gofiber/fiber/v2"

	"pharmachain-backend/internal/database"
	"pharmachain-backend/internal/models"
)

// GET /api/audit-logs?role=distributor&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		query := database.DB.Model(&models.AuditLog{}).Order("created_at DESC").Limit(limit)
		if role := c.Query("role"); role != "" {
			if !models.ValidRole(models.Role(role)) {
				return fiber.NewError(fiber.StatusBadRequest, "unknown role")
			}
			query = query.Where("role = ?", role)
		}

		var logs []models.AuditLog
		if err := query.Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "audit logs could not be loaded")
		}
		return c.JSON(logs)
	}
}
