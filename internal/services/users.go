package services

import (
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

func ListUsers(db *gorm.DB, skip, limit int) ([]models.User, error) {
	var users []models.User
	if err := paginate(db, skip, limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser hard-deletes the user; staff memberships cascade at the
// schema level.
func DeleteUser(db *gorm.DB, id uint) error {
	if _, err := GetUser(db, id); err != nil {
		return err
	}
	return db.Unscoped().Delete(&models.User{}, id).Error
}
