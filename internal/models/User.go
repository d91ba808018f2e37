package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleRegular UserRole = "Regular"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleRegular:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name     string   `json:"name"`
	Email    string   `json:"email" gorm:"uniqueIndex"`
	Password string   `json:"-"`
	Phone    string   `json:"phone"`
	Role     UserRole `json:"role" gorm:"default:Regular"`

	SupplierStaff []SupplierStaff `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"supplier_staff,omitempty"`
	ConsumerStaff []ConsumerStaff `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"consumer_staff,omitempty"`
}
