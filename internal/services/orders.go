package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

// StockPolicy decides what happens to product stock when an order line
// is accepted into a new order. It runs inside the order transaction.
type StockPolicy func(tx *gorm.DB, product *models.Product, quantity int) error

// KeepStock leaves stock untouched; reservation happens elsewhere.
func KeepStock(tx *gorm.DB, product *models.Product, quantity int) error {
	return nil
}

// DecrementStock reserves the ordered quantity immediately.
func DecrementStock(tx *gorm.DB, product *models.Product, quantity int) error {
	return tx.Model(&models.Product{}).
		Where("id = ?", product.ID).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity)).Error
}

// StockPolicyByName resolves the configured policy; unknown names fall
// back to KeepStock.
func StockPolicyByName(name string) StockPolicy {
	if name == "decrement" {
		return DecrementStock
	}
	return KeepStock
}

type OrderLine struct {
	ProductID uint
	Quantity  int
}

type OrderInput struct {
	SupplierID      uint
	ConsumerID      uint
	ConsumerStaffID uint
	Items           []OrderLine
	DeliveryDate    *time.Time
}

type OrderPatch struct {
	Status          *models.OrderStatus
	RejectionReason *string
	DeliveryDate    *time.Time
}

type OrderFilter struct {
	SupplierID *uint
	ConsumerID *uint
}

// CreateOrder validates every line against the catalog, snapshots unit
// prices, and writes the order and its items as one transaction. A
// failure on any line leaves no partial order behind.
func CreateOrder(db *gorm.DB, in OrderInput, policy StockPolicy) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, apperr.New(apperr.BadRequest, "order must contain at least one item")
	}
	if policy == nil {
		policy = KeepStock
	}
	if _, err := GetSupplier(db, in.SupplierID); err != nil {
		return nil, err
	}
	if _, err := GetConsumer(db, in.ConsumerID); err != nil {
		return nil, err
	}
	var staff models.ConsumerStaff
	if err := db.First(&staff, in.ConsumerStaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "consumer staff not found")
		}
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var total float64
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			tx.Rollback()
			return nil, apperr.New(apperr.BadRequest, "quantity must be positive")
		}
		product, err := GetProduct(tx, line.ProductID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if line.Quantity > product.Stock {
			tx.Rollback()
			return nil, apperr.New(apperr.BadRequest,
				fmt.Sprintf("insufficient stock for product %s", product.Name))
		}
		if line.Quantity < product.MinimumOrderQuantity {
			tx.Rollback()
			return nil, apperr.New(apperr.BadRequest,
				fmt.Sprintf("minimum order quantity for product %s is %d", product.Name, product.MinimumOrderQuantity))
		}
		if err := policy(tx, product, line.Quantity); err != nil {
			tx.Rollback()
			return nil, err
		}

		subtotal := product.Price * float64(line.Quantity)
		total += subtotal
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Subtotal:  subtotal,
		})
	}

	order := models.Order{
		SupplierID:      in.SupplierID,
		ConsumerID:      in.ConsumerID,
		ConsumerStaffID: in.ConsumerStaffID,
		Status:          models.OrderPending,
		TotalAmount:     total,
		DeliveryDate:    in.DeliveryDate,
		Items:           items,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func ListOrders(db *gorm.DB, filter OrderFilter, skip, limit int) ([]models.Order, error) {
	query := db.Model(&models.Order{})
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.ConsumerID != nil {
		query = query.Where("consumer_id = ?", *filter.ConsumerID)
	}
	var orders []models.Order
	if err := paginate(query, skip, limit).Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func GetOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, err
	}
	return &order, nil
}

// UpdateOrder patches status, rejection reason and delivery date.
// Status moves follow the explicit transition graph; TotalAmount is
// never touched after creation.
func UpdateOrder(db *gorm.DB, id uint, patch OrderPatch) (*models.Order, error) {
	order, err := GetOrder(db, id)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil {
		target := *patch.Status
		if !target.Valid() {
			return nil, apperr.New(apperr.BadRequest, "invalid order status")
		}
		if !order.Status.CanTransitionTo(target) {
			return nil, apperr.New(apperr.BadRequest,
				fmt.Sprintf("cannot transition order from %s to %s", order.Status, target))
		}
		order.Status = target
	}
	if patch.RejectionReason != nil {
		order.RejectionReason = *patch.RejectionReason
	}
	if patch.DeliveryDate != nil {
		order.DeliveryDate = patch.DeliveryDate
	}
	if err := db.Omit(clause.Associations).Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
