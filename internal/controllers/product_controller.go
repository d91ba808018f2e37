package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/services"
)

type productInput struct {
	SupplierID           uint    `json:"supplier_id" binding:"required"`
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description"`
	Price                float64 `json:"price"`
	Unit                 string  `json:"unit"`
	Stock                int     `json:"stock"`
	MinimumOrderQuantity int     `json:"minimum_order_quantity"`
	ImageURL             string  `json:"image_url"`
	DeliveryAvailable    *bool   `json:"delivery_available"`
	PickupAvailable      *bool   `json:"pickup_available"`
	LeadTime             string  `json:"lead_time"`
	DeliveryZones        string  `json:"delivery_zones"`
}

func CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := services.CreateProduct(requestDB(c), services.ProductInput{
		SupplierID:           input.SupplierID,
		Name:                 input.Name,
		Description:          input.Description,
		Price:                input.Price,
		Unit:                 input.Unit,
		Stock:                input.Stock,
		MinimumOrderQuantity: input.MinimumOrderQuantity,
		ImageURL:             input.ImageURL,
		DeliveryAvailable:    input.DeliveryAvailable,
		PickupAvailable:      input.PickupAvailable,
		LeadTime:             input.LeadTime,
		DeliveryZones:        input.DeliveryZones,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func ListProducts(c *gin.Context) {
	skip, limit := pagination(c)
	supplierID, ok := uintQuery(c, "supplier_id")
	if !ok {
		return
	}
	products, err := services.ListProducts(requestDB(c), supplierID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := services.GetProduct(requestDB(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input struct {
		Name                 *string  `json:"name"`
		Description          *string  `json:"description"`
		Price                *float64 `json:"price"`
		Unit                 *string  `json:"unit"`
		Stock                *int     `json:"stock"`
		IsActive             *bool    `json:"is_active"`
		MinimumOrderQuantity *int     `json:"minimum_order_quantity"`
		ImageURL             *string  `json:"image_url"`
		DeliveryAvailable    *bool    `json:"delivery_available"`
		PickupAvailable      *bool    `json:"pickup_available"`
		LeadTime             *string  `json:"lead_time"`
		DeliveryZones        *string  `json:"delivery_zones"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := services.UpdateProduct(requestDB(c), id, services.ProductPatch{
		Name:                 input.Name,
		Description:          input.Description,
		Price:                input.Price,
		Unit:                 input.Unit,
		Stock:                input.Stock,
		IsActive:             input.IsActive,
		MinimumOrderQuantity: input.MinimumOrderQuantity,
		ImageURL:             input.ImageURL,
		DeliveryAvailable:    input.DeliveryAvailable,
		PickupAvailable:      input.PickupAvailable,
		LeadTime:             input.LeadTime,
		DeliveryZones:        input.DeliveryZones,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}
