package services

import (
	"errors"

	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/repository"

	"gorm.io/gorm"
)

// OrderService covers the admin side of the order lifecycle. Every method
// takes an AdminCapability so the role check cannot be skipped.
type OrderService interface {
	ListOrders(admin AdminCapability) ([]models.Order, error)
	GetOrder(admin AdminCapability, id uint) (*models.Order, error)
	GetOrderItems(admin AdminCapability, orderID uint) ([]models.OrderItem, error)
	UpdateStatus(admin AdminCapability, id uint, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(admin AdminCapability, id uint) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
}

func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository) OrderService {
	return &orderService{orderRepo: orderRepo, orderItemRepo: orderItemRepo}
}

// ListOrders returns all orders, newest first.
func (s *orderService) ListOrders(admin AdminCapability) ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrder(admin AdminCapability, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderItems(admin AdminCapability, orderID uint) ([]models.OrderItem, error) {
	if _, err := s.GetOrder(admin, orderID); err != nil {
		return nil, err
	}
	return s.orderItemRepo.GetByOrderID(orderID)
}

// UpdateStatus overwrites the order's status. Only the header changes;
// items are immutable snapshots and stay untouched.
func (s *orderService) UpdateStatus(admin AdminCapability, id uint, status models.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order.Status = string(status)
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes the order and all of its items.
func (s *orderService) DeleteOrder(admin AdminCapability, id uint) error {
	if _, err := s.orderRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.orderRepo.DeleteWithItems(id)
}
