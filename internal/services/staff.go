package services

import (
	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

// AddSupplierStaff joins a user to a supplier organization. A user may
// hold at most one staff record per supplier.
func AddSupplierStaff(db *gorm.DB, supplierID, userID uint, role models.SupplierStaffRole) (*models.SupplierStaff, error) {
	if !role.Valid() {
		return nil, apperr.New(apperr.BadRequest, "invalid supplier staff role")
	}
	if _, err := GetSupplier(db, supplierID); err != nil {
		return nil, err
	}
	if _, err := GetUser(db, userID); err != nil {
		return nil, err
	}

	staff := models.SupplierStaff{
		UserID:     userID,
		SupplierID: supplierID,
		Role:       role,
	}
	if err := db.Create(&staff).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.Conflict, "user is already staff of this supplier")
		}
		return nil, err
	}
	return &staff, nil
}

func ListSupplierStaff(db *gorm.DB, supplierID uint, skip, limit int) ([]models.SupplierStaff, error) {
	if _, err := GetSupplier(db, supplierID); err != nil {
		return nil, err
	}
	var staff []models.SupplierStaff
	if err := paginate(db.Where("supplier_id = ?", supplierID), skip, limit).
		Preload("User").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// AddConsumerStaff mirrors AddSupplierStaff for consumer organizations.
func AddConsumerStaff(db *gorm.DB, consumerID, userID uint, role models.ConsumerStaffRole) (*models.ConsumerStaff, error) {
	if !role.Valid() {
		return nil, apperr.New(apperr.BadRequest, "invalid consumer staff role")
	}
	if _, err := GetConsumer(db, consumerID); err != nil {
		return nil, err
	}
	if _, err := GetUser(db, userID); err != nil {
		return nil, err
	}

	staff := models.ConsumerStaff{
		UserID:     userID,
		ConsumerID: consumerID,
		Role:       role,
	}
	if err := db.Create(&staff).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.Conflict, "user is already staff of this consumer")
		}
		return nil, err
	}
	return &staff, nil
}

func ListConsumerStaff(db *gorm.DB, consumerID uint, skip, limit int) ([]models.ConsumerStaff, error) {
	if _, err := GetConsumer(db, consumerID); err != nil {
		return nil, err
	}
	var staff []models.ConsumerStaff
	if err := paginate(db.Where("consumer_id = ?", consumerID), skip, limit).
		Preload("User").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}
