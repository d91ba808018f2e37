// internal/models/order.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderAccepted   OrderStatus = "Accepted"
	OrderRejected   OrderStatus = "Rejected"
	OrderInProgress OrderStatus = "In Progress"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderRejected, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderAccepted, OrderRejected, OrderCancelled},
	OrderAccepted:   {OrderInProgress, OrderCancelled},
	OrderInProgress: {OrderCompleted, OrderCancelled},
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Order is placed by a consumer staff member against a supplier.
// TotalAmount is computed from the items at creation and never
// recomputed afterwards.
type Order struct {
	gorm.Model
	SupplierID      uint        `json:"supplier_id"`
	ConsumerID      uint        `json:"consumer_id"`
	ConsumerStaffID uint        `json:"consumer_staff_id"`
	OrderDate       time.Time   `json:"order_date" gorm:"autoCreateTime"`
	Status          OrderStatus `json:"status" gorm:"default:Pending"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryDate    *time.Time  `json:"delivery_date,omitempty"`
	RejectionReason string      `json:"rejection_reason,omitempty"`

	ConsumerStaff *ConsumerStaff `gorm:"foreignKey:ConsumerStaffID;constraint:OnDelete:CASCADE" json:"consumer_staff,omitempty"`
	Items         []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Complaints    []Complaint    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"complaints,omitempty"`
}

// OrderItem snapshots the product price at order time so later price
// changes do not affect existing orders.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}
