// internal/models/staff.go
package models

import "gorm.io/gorm"

type SupplierStaffRole string

const (
	SupplierRoleOwner   SupplierStaffRole = "Owner"
	SupplierRoleManager SupplierStaffRole = "Manager"
	SupplierRoleSales   SupplierStaffRole = "Sales Representative"
)

func (r SupplierStaffRole) Valid() bool {
	switch r {
	case SupplierRoleOwner, SupplierRoleManager, SupplierRoleSales:
		return true
	}
	return false
}

type ConsumerStaffRole string

const (
	ConsumerRoleOwner   ConsumerStaffRole = "Owner"
	ConsumerRoleManager ConsumerStaffRole = "Manager"
	ConsumerRoleStaff   ConsumerStaffRole = "Staff"
)

func (r ConsumerStaffRole) Valid() bool {
	switch r {
	case ConsumerRoleOwner, ConsumerRoleManager, ConsumerRoleStaff:
		return true
	}
	return false
}

// SupplierStaff joins a User to a Supplier. A user holds at most one
// staff record per supplier (composite unique index).
type SupplierStaff struct {
	gorm.Model
	UserID     uint              `json:"user_id" gorm:"uniqueIndex:idx_supplier_staff_member"`
	SupplierID uint              `json:"supplier_id" gorm:"uniqueIndex:idx_supplier_staff_member"`
	Role       SupplierStaffRole `json:"role"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// ConsumerStaff joins a User to a Consumer, same uniqueness rule.
type ConsumerStaff struct {
	gorm.Model
	UserID     uint              `json:"user_id" gorm:"uniqueIndex:idx_consumer_staff_member"`
	ConsumerID uint              `json:"consumer_id" gorm:"uniqueIndex:idx_consumer_staff_member"`
	Role       ConsumerStaffRole `json:"role"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
