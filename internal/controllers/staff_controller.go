package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/models"
	"marketplace/internal/services"
)

// AddSupplierStaff joins an existing user to the supplier organization.
func AddSupplierStaff(c *gin.Context) {
	supplierID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input struct {
		UserID uint                     `json:"user_id" binding:"required"`
		Role   models.SupplierStaffRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := services.AddSupplierStaff(requestDB(c), supplierID, input.UserID, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"staff": staff})
}

func ListSupplierStaff(c *gin.Context) {
	supplierID, ok := pathID(c, "id")
	if !ok {
		return
	}
	skip, limit := pagination(c)
	staff, err := services.ListSupplierStaff(requestDB(c), supplierID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": staff})
}

func AddConsumerStaff(c *gin.Context) {
	consumerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input struct {
		UserID uint                     `json:"user_id" binding:"required"`
		Role   models.ConsumerStaffRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := services.AddConsumerStaff(requestDB(c), consumerID, input.UserID, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"staff": staff})
}

func ListConsumerStaff(c *gin.Context) {
	consumerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	skip, limit := pagination(c)
	staff, err := services.ListConsumerStaff(requestDB(c), consumerID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": staff})
}
