// internal/models/supplier.go
package models

import "gorm.io/gorm"

// Supplier is a food-producing company selling through the platform.
// VerificationStatus is the KYB flag set by an admin after vetting.
type Supplier struct {
	gorm.Model
	CompanyName        string `json:"company_name" binding:"required"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	VerificationStatus bool   `json:"verification_status" gorm:"default:false"`

	Staff    []SupplierStaff `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
	Products []Product       `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Links    []Link          `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"links,omitempty"`
	Orders   []Order         `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}
