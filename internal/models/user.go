package models

import "time"

// Role tokens the role router accepts. Any authenticated session may open
// any dashboard; the token only selects the view.
type Role string

const (
	RoleManufacturer Role = "manufacturer"
	RoleDistributor  Role = "distributor"
	RoleRetailer     Role = "retailer"
	RoleRegulator    Role = "regulator"
)

var Roles = []Role{RoleManufacturer, RoleDistributor, RoleRetailer, RoleRegulator}

func ValidRole(r Role) bool {
	for _, known := range Roles {
		if known == r {
			return true
		}
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
