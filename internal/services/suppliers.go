package services

import (
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

type SupplierInput struct {
	CompanyName string
	Address     string
	Phone       string
	Email       string
}

type SupplierPatch struct {
	CompanyName        *string
	Address            *string
	Phone              *string
	Email              *string
	VerificationStatus *bool
}

func CreateSupplier(db *gorm.DB, in SupplierInput) (*models.Supplier, error) {
	supplier := models.Supplier{
		CompanyName: in.CompanyName,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
	}
	if err := db.Create(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func ListSuppliers(db *gorm.DB, skip, limit int) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := paginate(db, skip, limit).Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func GetSupplier(db *gorm.DB, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := db.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "supplier not found")
		}
		return nil, err
	}
	return &supplier, nil
}

func UpdateSupplier(db *gorm.DB, id uint, patch SupplierPatch) (*models.Supplier, error) {
	supplier, err := GetSupplier(db, id)
	if err != nil {
		return nil, err
	}
	if patch.CompanyName != nil {
		supplier.CompanyName = *patch.CompanyName
	}
	if patch.Address != nil {
		supplier.Address = *patch.Address
	}
	if patch.Phone != nil {
		supplier.Phone = *patch.Phone
	}
	if patch.Email != nil {
		supplier.Email = *patch.Email
	}
	if patch.VerificationStatus != nil {
		supplier.VerificationStatus = *patch.VerificationStatus
	}
	if err := db.Save(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier hard-deletes the supplier so staff, products, links
// and orders cascade at the schema level.
func DeleteSupplier(db *gorm.DB, id uint) error {
	if _, err := GetSupplier(db, id); err != nil {
		return err
	}
	return db.Unscoped().Delete(&models.Supplier{}, id).Error
}
