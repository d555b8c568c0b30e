package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/sharongvarghese/ShopCart/internal/models"

	"gorm.io/gorm"
)

// mockOrderRepo records orders and items committed together, the way the
// gorm repository does inside one transaction.
type mockOrderRepo struct {
	nextID    uint
	orders    map[uint]*models.Order
	items     map[uint][]models.OrderItem
	createErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{nextID: 1, orders: map[uint]*models.Order{}, items: map[uint][]models.OrderItem{}}
}

func (m *mockOrderRepo) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	if m.createErr != nil {
		// Transaction rolled back: neither header nor items persist.
		return m.createErr
	}
	order.ID = m.nextID
	m.nextID++
	for i := range items {
		items[i].OrderID = order.ID
	}
	m.orders[order.ID] = order
	m.items[order.ID] = items
	return nil
}

func (m *mockOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, errNotFound
	}
	return order, nil
}

func (m *mockOrderRepo) GetAll() ([]models.Order, error) {
	orders := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, *o)
	}
	// Newest first, like the repository's created_at DESC query.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (m *mockOrderRepo) Update(order *models.Order) error {
	if _, ok := m.orders[order.ID]; !ok {
		return errNotFound
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) DeleteWithItems(id uint) error {
	if _, ok := m.orders[id]; !ok {
		return errNotFound
	}
	delete(m.orders, id)
	delete(m.items, id)
	return nil
}

var errNotFound = gorm.ErrRecordNotFound

func validForm() CheckoutForm {
	return CheckoutForm{
		Name:    "Asha Nair",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Address: "12 Beach Road",
		City:    "Kochi",
		Pincode: "682001",
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	store := newMemCartStore()
	repo := newMockOrderRepo()
	svc := NewCheckoutService(repo, store)

	order, err := svc.PlaceOrder(context.Background(), "s1", validForm())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if order != nil {
		t.Fatalf("expected no order, got %+v", order)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("empty-cart checkout must not persist anything")
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	store := newMemCartStore()
	cartSvc := newTestCartService(store)
	repo := newMockOrderRepo()
	svc := NewCheckoutService(repo, store)
	ctx := context.Background()

	// cart = {P1: qty 2 @ 10.00, P2: qty 1 @ 5.00}
	cartSvc.Add(ctx, "s1", 1)
	cartSvc.Add(ctx, "s1", 1)
	cartSvc.Add(ctx, "s1", 2)

	order, err := svc.PlaceOrder(ctx, "s1", validForm())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.TotalAmount != 25.0 {
		t.Fatalf("expected total 25.00, got %.2f", order.TotalAmount)
	}
	if order.Status != string(models.OrderPending) {
		t.Fatalf("expected Pending status, got %s", order.Status)
	}
	if len(repo.orders) != 1 {
		t.Fatalf("expected exactly 1 order, got %d", len(repo.orders))
	}

	items := repo.items[order.ID]
	if len(items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(items))
	}
	subtotals := map[uint]float64{}
	sum := 0.0
	for _, item := range items {
		if item.OrderID != order.ID {
			t.Fatalf("item not linked to order: %+v", item)
		}
		subtotals[item.ProductID] = item.Subtotal
		sum += item.Subtotal
	}
	if subtotals[1] != 20.0 || subtotals[2] != 5.0 {
		t.Fatalf("unexpected subtotals: %v", subtotals)
	}
	if sum != order.TotalAmount {
		t.Fatalf("total %.2f != sum of subtotals %.2f", order.TotalAmount, sum)
	}

	// Cart is cleared only after the commit.
	cart, err := store.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected cart cleared after checkout")
	}
}

func TestPlaceOrderPersistFailureKeepsCart(t *testing.T) {
	store := newMemCartStore()
	cartSvc := newTestCartService(store)
	repo := newMockOrderRepo()
	repo.createErr = errors.New("connection lost")
	svc := NewCheckoutService(repo, store)
	ctx := context.Background()

	cartSvc.Add(ctx, "s1", 1)

	if _, err := svc.PlaceOrder(ctx, "s1", validForm()); err == nil {
		t.Fatalf("expected persistence error")
	}
	if len(repo.orders) != 0 {
		t.Fatalf("rolled-back checkout must leave no orders")
	}

	cart, err := store.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if cart.IsEmpty() {
		t.Fatalf("cart must survive a failed checkout")
	}
}
