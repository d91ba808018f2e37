package services

import (
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

type ConsumerInput struct {
	CompanyName string
	Address     string
	Phone       string
	Email       string
	Type        models.ConsumerType
}

type ConsumerPatch struct {
	CompanyName *string
	Address     *string
	Phone       *string
	Email       *string
	Type        *models.ConsumerType
}

func CreateConsumer(db *gorm.DB, in ConsumerInput) (*models.Consumer, error) {
	if in.Type == "" {
		in.Type = models.ConsumerRestaurant
	}
	if !in.Type.Valid() {
		return nil, apperr.New(apperr.BadRequest, "invalid consumer type")
	}
	consumer := models.Consumer{
		CompanyName: in.CompanyName,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Type:        in.Type,
	}
	if err := db.Create(&consumer).Error; err != nil {
		return nil, err
	}
	return &consumer, nil
}

func ListConsumers(db *gorm.DB, skip, limit int) ([]models.Consumer, error) {
	var consumers []models.Consumer
	if err := paginate(db, skip, limit).Find(&consumers).Error; err != nil {
		return nil, err
	}
	return consumers, nil
}

func GetConsumer(db *gorm.DB, id uint) (*models.Consumer, error) {
	var consumer models.Consumer
	if err := db.First(&consumer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "consumer not found")
		}
		return nil, err
	}
	return &consumer, nil
}

func UpdateConsumer(db *gorm.DB, id uint, patch ConsumerPatch) (*models.Consumer, error) {
	consumer, err := GetConsumer(db, id)
	if err != nil {
		return nil, err
	}
	if patch.CompanyName != nil {
		consumer.CompanyName = *patch.CompanyName
	}
	if patch.Address != nil {
		consumer.Address = *patch.Address
	}
	if patch.Phone != nil {
		consumer.Phone = *patch.Phone
	}
	if patch.Email != nil {
		consumer.Email = *patch.Email
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return nil, apperr.New(apperr.BadRequest, "invalid consumer type")
		}
		consumer.Type = *patch.Type
	}
	if err := db.Save(consumer).Error; err != nil {
		return nil, err
	}
	return consumer, nil
}

func DeleteConsumer(db *gorm.DB, id uint) error {
	if _, err := GetConsumer(db, id); err != nil {
		return err
	}
	return db.Unscoped().Delete(&models.Consumer{}, id).Error
}
