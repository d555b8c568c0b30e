package services

import (
	"context"
	"errors"
	"time"

	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/repository"

	"gorm.io/gorm"
)

// CartStore is the session-scoped persistence the cart service reads at the
// start and writes at the end of every cart-touching request. Implemented by
// the redis client.
type CartStore interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	SaveCart(ctx context.Context, sessionID string, cart *models.Cart, ttl time.Duration) error
	DeleteCart(ctx context.Context, sessionID string) error
}

// AdjustDirection selects which way Adjust moves a line's quantity.
type AdjustDirection string

const (
	AdjustIncrease AdjustDirection = "increase"
	AdjustDecrease AdjustDirection = "decrease"
)

type CartService interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Add(ctx context.Context, sessionID string, productID uint) (*models.Cart, error)
	Remove(ctx context.Context, sessionID string, productID uint) (*models.Cart, error)
	SetQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*models.Cart, error)
	Adjust(ctx context.Context, sessionID string, productID uint, direction AdjustDirection) (*models.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	Total(ctx context.Context, sessionID string) (float64, error)
}

type cartService struct {
	productRepo repository.ProductRepository
	store       CartStore
	cartTTL     time.Duration
}

func NewCartService(productRepo repository.ProductRepository, store CartStore, cartTTL time.Duration) CartService {
	return &cartService{productRepo: productRepo, store: store, cartTTL: cartTTL}
}

func (s *cartService) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.store.GetCart(ctx, sessionID)
}

// Add snapshots the product's current name, price and image into the cart,
// or bumps the quantity if the product is already carted.
func (s *cartService) Add(ctx context.Context, sessionID string, productID uint) (*models.Cart, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(product)

	if err := s.store.SaveCart(ctx, sessionID, cart, s.cartTTL); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) Remove(ctx context.Context, sessionID string, productID uint) (*models.Cart, error) {
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.Remove(productID) {
		// Nothing to persist; report so the caller can show a notice.
		return cart, ErrNotInCart
	}

	if err := s.store.SaveCart(ctx, sessionID, cart, s.cartTTL); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) SetQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*models.Cart, error) {
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, quantity)

	if err := s.store.SaveCart(ctx, sessionID, cart, s.cartTTL); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) Adjust(ctx context.Context, sessionID string, productID uint, direction AdjustDirection) (*models.Cart, error) {
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch direction {
	case AdjustIncrease:
		cart.Increase(productID)
	case AdjustDecrease:
		cart.Decrease(productID)
	}

	if err := s.store.SaveCart(ctx, sessionID, cart, s.cartTTL); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.DeleteCart(ctx, sessionID)
}

func (s *cartService) Total(ctx context.Context, sessionID string) (float64, error) {
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}
