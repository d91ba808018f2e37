package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

type LinkFilter struct {
	SupplierID *uint
	ConsumerID *uint
}

// CreateLink requests a supplier-consumer relationship. The pair is
// unique across the table regardless of status.
func CreateLink(db *gorm.DB, supplierID, consumerID uint) (*models.Link, error) {
	if _, err := GetSupplier(db, supplierID); err != nil {
		return nil, err
	}
	if _, err := GetConsumer(db, consumerID); err != nil {
		return nil, err
	}

	var existing models.Link
	err := db.Where("supplier_id = ? AND consumer_id = ?", supplierID, consumerID).First(&existing).Error
	if err == nil {
		return nil, apperr.New(apperr.Conflict, "link already exists for this supplier and consumer")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	link := models.Link{
		SupplierID: supplierID,
		ConsumerID: consumerID,
		Status:     models.LinkPending,
	}
	if err := db.Create(&link).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.Conflict, "link already exists for this supplier and consumer")
		}
		return nil, err
	}
	return &link, nil
}

func ListLinks(db *gorm.DB, filter LinkFilter, skip, limit int) ([]models.Link, error) {
	query := db.Model(&models.Link{})
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.ConsumerID != nil {
		query = query.Where("consumer_id = ?", *filter.ConsumerID)
	}
	var links []models.Link
	if err := paginate(query, skip, limit).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func GetLink(db *gorm.DB, id uint) (*models.Link, error) {
	var link models.Link
	if err := db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "link not found")
		}
		return nil, err
	}
	return &link, nil
}

// UpdateLinkStatus moves a link along the explicit transition graph:
// Pending -> Approved|Rejected, Approved -> Removed|Blocked. An
// approval stamps ApprovedAt.
func UpdateLinkStatus(db *gorm.DB, id uint, target models.LinkStatus) (*models.Link, error) {
	if !target.Valid() {
		return nil, apperr.New(apperr.BadRequest, "invalid link status")
	}
	link, err := GetLink(db, id)
	if err != nil {
		return nil, err
	}
	if !link.Status.CanTransitionTo(target) {
		return nil, apperr.New(apperr.BadRequest,
			fmt.Sprintf("cannot transition link from %s to %s", link.Status, target))
	}

	link.Status = target
	if target == models.LinkApproved {
		now := time.Now()
		link.ApprovedAt = &now
	}
	if err := db.Save(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}
