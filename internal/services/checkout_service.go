package services

import (
	"context"
	"log"
	"time"

	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/repository"
)

// CheckoutForm carries the shipping and contact details submitted with an
// order. Custom phone/pincode rules are registered in internal/validation.
type CheckoutForm struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,phone"`
	Address  string `json:"address" binding:"required"`
	Landmark string `json:"landmark"`
	City     string `json:"city" binding:"required"`
	Pincode  string `json:"pincode" binding:"required,pincode"`
}

type CheckoutService interface {
	// PlaceOrder converts the session's cart into a persisted order plus
	// one item per cart line, then clears the cart. The order and all of
	// its items commit in one transaction or not at all.
	PlaceOrder(ctx context.Context, sessionID string, form CheckoutForm) (*models.Order, error)
}

type checkoutService struct {
	orderRepo repository.OrderRepository
	store     CartStore
}

func NewCheckoutService(orderRepo repository.OrderRepository, store CartStore) CheckoutService {
	return &checkoutService{orderRepo: orderRepo, store: store}
}

func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID string, form CheckoutForm) (*models.Order, error) {
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		Name:        form.Name,
		Email:       form.Email,
		Phone:       form.Phone,
		Address:     form.Address,
		Landmark:    form.Landmark,
		City:        form.City,
		Pincode:     form.Pincode,
		TotalAmount: cart.Total(),
		Status:      string(models.OrderPending),
		CreatedAt:   time.Now(),
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal(),
			ImageURL:    line.ImageURL,
		})
	}

	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, err
	}

	// Clear the cart only after the transaction committed. A failed clear
	// leaves a stale cart behind but never a half-written order.
	if err := s.store.DeleteCart(ctx, sessionID); err != nil {
		log.Printf("checkout: order %d committed but cart %s not cleared: %v", order.ID, sessionID, err)
	}

	return order, nil
}
