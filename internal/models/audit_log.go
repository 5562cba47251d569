package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
)

// AuditLog records every mutating dashboard action: which user, on which
// role's dashboard, touched which record, with the record state before and
// after (JSON).
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID    uint   `json:"user_id"`
	UserEmail string `gorm:"size:100" json:"user_email"`

	Role Role `gorm:"size:20;index" json:"role"`

	// e.g. "shipment", "inventory_item", "production_log", "sale", "discrepancy"
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   int64  `gorm:"index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
