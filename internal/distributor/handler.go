package distributor

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pharmachain-backend/internal/audit"
	"pharmachain-backend/internal/auth"
	"pharmachain-backend/internal/models"
)

type UpdateStatusRequest struct {
	Status models.ShipmentStatus `json:"status"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// GET /api/distributor/shipments
func ListShipmentsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Shipments(c.Context()))
	}
}

// POST /api/distributor/shipments/:id/validate
func ValidateShipmentHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		shipment, err := svc.Validate(c.Context(), id)
		if err != nil {
			if errors.Is(err, ErrShipmentNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "shipment could not be validated")
		}

		userID, userEmail := auth.SessionUser(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserEmail:   userEmail,
			Role:        models.RoleDistributor,
			EntityType:  "shipment",
			EntityID:    shipment.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Shipment #SH-%d validated", shipment.ID),
			After:       shipment,
		})

		return c.JSON(shipment)
	}
}

// PUT /api/distributor/shipments/:id/status
func UpdateShipmentStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		shipment, err := svc.SetStatus(c.Context(), id, body.Status)
		if err != nil {
			switch {
			case errors.Is(err, ErrShipmentNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrUnknownStatus):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "shipment status could not be updated")
			}
		}

		userID, userEmail := auth.SessionUser(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserEmail:   userEmail,
			Role:        models.RoleDistributor,
			EntityType:  "shipment",
			EntityID:    shipment.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Shipment #SH-%d status set to %s", shipment.ID, shipment.Status),
			After:       shipment,
		})

		return c.JSON(shipment)
	}
}

// GET /api/distributor/inventory
func ListInventoryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Inventory(c.Context()))
	}
}

// PUT /api/distributor/inventory/:id/quantity
func UpdateInventoryQuantityHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateQuantityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		item, err := svc.UpdateQuantity(c.Context(), id, body.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, ErrInventoryNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrNegativeQuantity):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "inventory could not be updated")
			}
		}

		userID, userEmail := auth.SessionUser(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserEmail:   userEmail,
			Role:        models.RoleDistributor,
			EntityType:  "inventory_item",
			EntityID:    item.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Inventory %s set to %d units", item.Product, item.Quantity),
			After:       item,
		})

		return c.JSON(item)
	}
}

// GET /api/distributor/summary
func SummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Summary(c.Context()))
	}
}
