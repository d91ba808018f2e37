package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace/internal/config"
	"marketplace/internal/models"
	"marketplace/internal/services"
)

type orderLineInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type orderInput struct {
	SupplierID   uint             `json:"supplier_id" binding:"required"`
	ConsumerID   uint             `json:"consumer_id" binding:"required"`
	Items        []orderLineInput `json:"items" binding:"required"`
	DeliveryDate *time.Time       `json:"delivery_date"`
}

// CreateOrder places an order on behalf of the consumer staff passed
// as the consumer_staff_id query parameter.
func CreateOrder(c *gin.Context) {
	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staffID, err := strconv.ParseUint(c.Query("consumer_staff_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consumer_staff_id is required"})
		return
	}

	lines := make([]services.OrderLine, 0, len(input.Items))
	for _, item := range input.Items {
		lines = append(lines, services.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := services.CreateOrder(requestDB(c), services.OrderInput{
		SupplierID:      input.SupplierID,
		ConsumerID:      input.ConsumerID,
		ConsumerStaffID: uint(staffID),
		Items:           lines,
		DeliveryDate:    input.DeliveryDate,
	}, services.StockPolicyByName(config.StockPolicyName()))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func ListOrders(c *gin.Context) {
	skip, limit := pagination(c)
	supplierID, ok := uintQuery(c, "supplier_id")
	if !ok {
		return
	}
	consumerID, ok := uintQuery(c, "consumer_id")
	if !ok {
		return
	}
	filter := services.OrderFilter{
		SupplierID: supplierID,
		ConsumerID: consumerID,
	}
	orders, err := services.ListOrders(requestDB(c), filter, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := services.GetOrder(requestDB(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status          *models.OrderStatus `json:"status"`
		RejectionReason *string             `json:"rejection_reason"`
		DeliveryDate    *time.Time          `json:"delivery_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.UpdateOrder(requestDB(c), id, services.OrderPatch{
		Status:          input.Status,
		RejectionReason: input.RejectionReason,
		DeliveryDate:    input.DeliveryDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
