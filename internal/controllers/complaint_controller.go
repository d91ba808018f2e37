package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/middleware"
	"marketplace/internal/models"
	"marketplace/internal/services"
)

type complaintInput struct {
	OrderID     uint                     `json:"order_id" binding:"required"`
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	Priority    models.ComplaintPriority `json:"priority"`
}

// CreateComplaint raises a complaint on behalf of the consumer staff
// passed as the consumer_staff_id query parameter.
func CreateComplaint(c *gin.Context) {
	var input complaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staffID, err := strconv.ParseUint(c.Query("consumer_staff_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consumer_staff_id is required"})
		return
	}

	complaint, err := services.CreateComplaint(requestDB(c), services.ComplaintInput{
		OrderID:         input.OrderID,
		ConsumerStaffID: uint(staffID),
		Title:           input.Title,
		Description:     input.Description,
		Priority:        input.Priority,
	}, middleware.AuthUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"complaint": complaint})
}

func ListComplaints(c *gin.Context) {
	skip, limit := pagination(c)
	orderID, ok := uintQuery(c, "order_id")
	if !ok {
		return
	}
	supplierID, ok := uintQuery(c, "supplier_id")
	if !ok {
		return
	}
	consumerID, ok := uintQuery(c, "consumer_id")
	if !ok {
		return
	}
	filter := services.ComplaintFilter{
		OrderID:    orderID,
		SupplierID: supplierID,
		ConsumerID: consumerID,
	}
	complaints, err := services.ListComplaints(requestDB(c), filter, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": complaints})
}

func GetComplaint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	complaint, err := services.GetComplaint(requestDB(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaint": complaint})
}

// UpdateComplaint assigns, escalates or resolves a complaint; every
// call appends one audit log row.
func UpdateComplaint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status          *models.ComplaintStatus   `json:"status"`
		Priority        *models.ComplaintPriority `json:"priority"`
		SupplierStaffID *uint                     `json:"supplier_staff_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := services.UpdateComplaint(requestDB(c), id, services.ComplaintPatch{
		Status:          input.Status,
		Priority:        input.Priority,
		SupplierStaffID: input.SupplierStaffID,
	}, middleware.AuthUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaint": complaint})
}
