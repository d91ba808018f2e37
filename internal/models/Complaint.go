// internal/models/complaint.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "Open"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
	ComplaintEscalated  ComplaintStatus = "Escalated"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved, ComplaintEscalated:
		return true
	}
	return false
}

type ComplaintPriority string

const (
	PriorityLow      ComplaintPriority = "Low"
	PriorityMedium   ComplaintPriority = "Medium"
	PriorityHigh     ComplaintPriority = "High"
	PriorityCritical ComplaintPriority = "Critical"
)

func (p ComplaintPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Complaint is raised by consumer staff against an order and may be
// assigned to a supplier staff member for resolution.
type Complaint struct {
	gorm.Model
	OrderID         uint              `json:"order_id"`
	ConsumerStaffID uint              `json:"consumer_staff_id"`
	SupplierStaffID *uint             `json:"supplier_staff_id,omitempty"` // assigned resolver
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description"`
	Status          ComplaintStatus   `json:"status" gorm:"default:Open"`
	Priority        ComplaintPriority `json:"priority" gorm:"default:Medium"`
	ResolvedAt      *time.Time        `json:"resolved_at,omitempty"`

	ConsumerStaff *ConsumerStaff `gorm:"foreignKey:ConsumerStaffID;constraint:OnDelete:CASCADE" json:"consumer_staff,omitempty"`
	SupplierStaff *SupplierStaff `gorm:"foreignKey:SupplierStaffID;constraint:OnDelete:SET NULL" json:"supplier_staff,omitempty"`
	Logs          []ComplaintLog `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE" json:"logs,omitempty"`
}

// ComplaintLog is the append-only audit trail. Every state-changing
// operation on a complaint writes exactly one row.
type ComplaintLog struct {
	gorm.Model
	ComplaintID uint   `json:"complaint_id"`
	UserID      uint   `json:"user_id"`
	Action      string `json:"action"` // "Created", "Assigned", "Resolved", ...
	Notes       string `json:"notes"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
