package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/services"
)

type supplierInput struct {
	CompanyName string `json:"company_name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// CreateSupplier registers a new supplier company; the KYB flag starts
// unset.
func CreateSupplier(c *gin.Context) {
	var input supplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := services.CreateSupplier(requestDB(c), services.SupplierInput{
		CompanyName: input.CompanyName,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"supplier": supplier})
}

func ListSuppliers(c *gin.Context) {
	skip, limit := pagination(c)
	suppliers, err := services.ListSuppliers(requestDB(c), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": suppliers})
}

func GetSupplier(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	supplier, err := services.GetSupplier(requestDB(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

func UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input struct {
		CompanyName        *string `json:"company_name"`
		Address            *string `json:"address"`
		Phone              *string `json:"phone"`
		Email              *string `json:"email"`
		VerificationStatus *bool   `json:"verification_status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := services.UpdateSupplier(requestDB(c), id, services.SupplierPatch{
		CompanyName:        input.CompanyName,
		Address:            input.Address,
		Phone:              input.Phone,
		Email:              input.Email,
		VerificationStatus: input.VerificationStatus,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

func DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteSupplier(requestDB(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}
