package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

type ComplaintInput struct {
	OrderID         uint
	ConsumerStaffID uint
	Title           string
	Description     string
	Priority        models.ComplaintPriority
}

type ComplaintPatch struct {
	Status          *models.ComplaintStatus
	Priority        *models.ComplaintPriority
	SupplierStaffID *uint
}

type ComplaintFilter struct {
	OrderID    *uint
	SupplierID *uint
	ConsumerID *uint
}

// CreateComplaint opens a complaint against an order and writes the
// initial "Created" audit row in the same transaction.
func CreateComplaint(db *gorm.DB, in ComplaintInput, actorUserID uint) (*models.Complaint, error) {
	if _, err := GetOrder(db, in.OrderID); err != nil {
		return nil, err
	}
	var staff models.ConsumerStaff
	if err := db.First(&staff, in.ConsumerStaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "consumer staff not found")
		}
		return nil, err
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, apperr.New(apperr.BadRequest, "invalid complaint priority")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	complaint := models.Complaint{
		OrderID:         in.OrderID,
		ConsumerStaffID: in.ConsumerStaffID,
		Title:           in.Title,
		Description:     in.Description,
		Status:          models.ComplaintOpen,
		Priority:        in.Priority,
		Logs: []models.ComplaintLog{{
			UserID: actorUserID,
			Action: "Created",
			Notes:  "Complaint created",
		}},
	}
	if err := tx.Create(&complaint).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

func ListComplaints(db *gorm.DB, filter ComplaintFilter, skip, limit int) ([]models.Complaint, error) {
	query := db.Model(&models.Complaint{})
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.SupplierID != nil || filter.ConsumerID != nil {
		query = query.Joins("JOIN orders ON orders.id = complaints.order_id")
		if filter.SupplierID != nil {
			query = query.Where("orders.supplier_id = ?", *filter.SupplierID)
		}
		if filter.ConsumerID != nil {
			query = query.Where("orders.consumer_id = ?", *filter.ConsumerID)
		}
	}
	var complaints []models.Complaint
	if err := paginate(query, skip, limit).Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetComplaint returns the complaint with its audit log, oldest first.
func GetComplaint(db *gorm.DB, id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := db.Preload("Logs", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&complaint, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "complaint not found")
		}
		return nil, err
	}
	return &complaint, nil
}

// UpdateComplaint patches status, priority and assignment in one call
// and appends exactly one audit row. The action label follows the
// documented precedence: Assigned > Resolved/Escalated > Updated.
func UpdateComplaint(db *gorm.DB, id uint, patch ComplaintPatch, actorUserID uint) (*models.Complaint, error) {
	complaint, err := GetComplaint(db, id)
	if err != nil {
		return nil, err
	}

	action := "Updated"
	if patch.Status != nil {
		target := *patch.Status
		if !target.Valid() {
			return nil, apperr.New(apperr.BadRequest, "invalid complaint status")
		}
		complaint.Status = target
		switch target {
		case models.ComplaintResolved:
			now := time.Now()
			complaint.ResolvedAt = &now
			action = "Resolved"
		case models.ComplaintEscalated:
			action = "Escalated"
		}
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, apperr.New(apperr.BadRequest, "invalid complaint priority")
		}
		complaint.Priority = *patch.Priority
	}
	if patch.SupplierStaffID != nil {
		var staff models.SupplierStaff
		if err := db.First(&staff, *patch.SupplierStaffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.NotFound, "supplier staff not found")
			}
			return nil, err
		}
		complaint.SupplierStaffID = patch.SupplierStaffID
		action = "Assigned"
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	if err := tx.Omit(clause.Associations).Save(complaint).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	log := models.ComplaintLog{
		ComplaintID: complaint.ID,
		UserID:      actorUserID,
		Action:      action,
		Notes:       fmt.Sprintf("Complaint %s", strings.ToLower(action)),
	}
	if err := tx.Create(&log).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return GetComplaint(db, id)
}
