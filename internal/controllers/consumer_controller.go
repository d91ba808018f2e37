package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/models"
	"marketplace/internal/services"
)

type consumerInput struct {
	CompanyName string              `json:"company_name" binding:"required"`
	Address     string              `json:"address"`
	Phone       string              `json:"phone"`
	Email       string              `json:"email"`
	Type        models.ConsumerType `json:"type"`
}

func CreateConsumer(c *gin.Context) {
	var input consumerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consumer, err := services.CreateConsumer(requestDB(c), services.ConsumerInput{
		CompanyName: input.CompanyName,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Type:        input.Type,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"consumer": consumer})
}

func ListConsumers(c *gin.Context) {
	skip, limit := pagination(c)
	consumers, err := services.ListConsumers(requestDB(c), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": consumers})
}

func GetConsumer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	consumer, err := services.GetConsumer(requestDB(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consumer": consumer})
}

func UpdateConsumer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input struct {
		CompanyName *string              `json:"company_name"`
		Address     *string              `json:"address"`
		Phone       *string              `json:"phone"`
		Email       *string              `json:"email"`
		Type        *models.ConsumerType `json:"type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consumer, err := services.UpdateConsumer(requestDB(c), id, services.ConsumerPatch{
		CompanyName: input.CompanyName,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Type:        input.Type,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consumer": consumer})
}

func DeleteConsumer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteConsumer(requestDB(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consumer deleted"})
}
