package repository

import (
	"github.com/sharongvarghese/ShopCart/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	GetByID(id uint) (*models.OrderItem, error)
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var orderItem models.OrderItem
	err := r.db.First(&orderItem, id).Error
	if err != nil {
		return nil, err
	}
	return &orderItem, nil
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&orderItems).Error
	return orderItems, err
}
