package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/models"
	"marketplace/internal/services"
)

// CreateLink requests a supplier-consumer relationship; duplicates for
// the pair are rejected regardless of status.
func CreateLink(c *gin.Context) {
	var input struct {
		SupplierID uint `json:"supplier_id" binding:"required"`
		ConsumerID uint `json:"consumer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := services.CreateLink(requestDB(c), input.SupplierID, input.ConsumerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"link": link})
}

func ListLinks(c *gin.Context) {
	skip, limit := pagination(c)
	supplierID, ok := uintQuery(c, "supplier_id")
	if !ok {
		return
	}
	consumerID, ok := uintQuery(c, "consumer_id")
	if !ok {
		return
	}
	filter := services.LinkFilter{
		SupplierID: supplierID,
		ConsumerID: consumerID,
	}
	links, err := services.ListLinks(requestDB(c), filter, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": links})
}

func GetLink(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	link, err := services.GetLink(requestDB(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link})
}

// UpdateLink approves, rejects, removes or blocks a link.
func UpdateLink(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status models.LinkStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := services.UpdateLinkStatus(requestDB(c), id, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link})
}
