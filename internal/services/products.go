package services

import (
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

type ProductInput struct {
	SupplierID           uint
	Name                 string
	Description          string
	Price                float64
	Unit                 string
	Stock                int
	MinimumOrderQuantity int
	ImageURL             string
	DeliveryAvailable    *bool
	PickupAvailable      *bool
	LeadTime             string
	DeliveryZones        string
}

type ProductPatch struct {
	Name                 *string
	Description          *string
	Price                *float64
	Unit                 *string
	Stock                *int
	IsActive             *bool
	MinimumOrderQuantity *int
	ImageURL             *string
	DeliveryAvailable    *bool
	PickupAvailable      *bool
	LeadTime             *string
	DeliveryZones        *string
}

func CreateProduct(db *gorm.DB, in ProductInput) (*models.Product, error) {
	if _, err := GetSupplier(db, in.SupplierID); err != nil {
		return nil, err
	}
	product := models.Product{
		SupplierID:           in.SupplierID,
		Name:                 in.Name,
		Description:          in.Description,
		Price:                in.Price,
		Unit:                 in.Unit,
		Stock:                in.Stock,
		IsActive:             true,
		MinimumOrderQuantity: in.MinimumOrderQuantity,
		ImageURL:             in.ImageURL,
		DeliveryAvailable:    true,
		PickupAvailable:      true,
		LeadTime:             in.LeadTime,
		DeliveryZones:        in.DeliveryZones,
	}
	if product.MinimumOrderQuantity <= 0 {
		product.MinimumOrderQuantity = 1
	}
	if in.DeliveryAvailable != nil {
		product.DeliveryAvailable = *in.DeliveryAvailable
	}
	if in.PickupAvailable != nil {
		product.PickupAvailable = *in.PickupAvailable
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func ListProducts(db *gorm.DB, supplierID *uint, skip, limit int) ([]models.Product, error) {
	query := db.Model(&models.Product{})
	if supplierID != nil {
		query = query.Where("supplier_id = ?", *supplierID)
	}
	var products []models.Product
	if err := paginate(query, skip, limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "product not found")
		}
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(db *gorm.DB, id uint, patch ProductPatch) (*models.Product, error) {
	product, err := GetProduct(db, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Unit != nil {
		product.Unit = *patch.Unit
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.IsActive != nil {
		product.IsActive = *patch.IsActive
	}
	if patch.MinimumOrderQuantity != nil {
		product.MinimumOrderQuantity = *patch.MinimumOrderQuantity
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	if patch.DeliveryAvailable != nil {
		product.DeliveryAvailable = *patch.DeliveryAvailable
	}
	if patch.PickupAvailable != nil {
		product.PickupAvailable = *patch.PickupAvailable
	}
	if patch.LeadTime != nil {
		product.LeadTime = *patch.LeadTime
	}
	if patch.DeliveryZones != nil {
		product.DeliveryZones = *patch.DeliveryZones
	}
	if err := db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}
