package repositories

import (
	"fmt"

	"caremarket/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders from the database.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID from the database.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Upsert writes the order keyed by its ID, overwriting all columns except
// created_at when the row already exists.
func (r *GORMOrderRepository) Upsert(order *models.Order) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "stripe_session_id", "payment_intent_id",
			"amount", "customer_email", "updated_at",
		}),
	}).Create(order).Error
	if err != nil {
		return fmt.Errorf("failed to upsert order %s: %w", order.ID, err)
	}
	return nil
}

// AttachPaymentIntent records the payment intent id and advances the status
// of an existing order. It is a targeted update: a missing order is an
// error, never an implicit create.
func (r *GORMOrderRepository) AttachPaymentIntent(id, paymentIntentID string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_intent_id": paymentIntentID,
			"status":            status,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to attach payment intent to order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
