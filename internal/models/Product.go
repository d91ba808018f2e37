// internal/models/product.go
package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	SupplierID           uint    `json:"supplier_id"`
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description"`
	Price                float64 `json:"price"`
	Unit                 string  `json:"unit"` // "kg", "piece", "box"
	Stock                int     `json:"stock" gorm:"default:0"`
	IsActive             bool    `json:"is_active" gorm:"default:true"`
	MinimumOrderQuantity int     `json:"minimum_order_quantity" gorm:"default:1"`
	ImageURL             string  `json:"image_url"`
	DeliveryAvailable    bool    `json:"delivery_available" gorm:"default:true"`
	PickupAvailable      bool    `json:"pickup_available" gorm:"default:true"`
	LeadTime             string  `json:"lead_time"` // "2-3 days"
	DeliveryZones        string  `json:"delivery_zones"`
}
