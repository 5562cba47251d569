package audit

import (
	"encoding/json"
	"fmt"

	"pharmachain-backend/internal/database"
	"pharmachain-backend/internal/models"
)

type LogOptions struct {
	UserID      uint
	UserEmail   string
	Role        models.Role
	EntityType  string
	EntityID    int64
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog records one mutating dashboard action. Snapshots marshal to
// "null" when absent so the jsonb columns always hold valid JSON. A nil
// database (unit tests) makes this a no-op.
func WriteLog(opts LogOptions) error {
	if database.DB == nil {
		return nil
	}

	beforeStr := "null"
	afterStr := "null"
	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserEmail:   opts.UserEmail,
		Role:        opts.Role,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log could not be written: %w", err)
	}
	return nil
}
