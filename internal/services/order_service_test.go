package services

import (
	"errors"
	"testing"
	"time"

	"github.com/sharongvarghese/ShopCart/internal/models"
)

// mockOrderItemRepo reads items out of the same maps the order repo writes.
type mockOrderItemRepo struct {
	repo *mockOrderRepo
}

func (m *mockOrderItemRepo) GetByID(id uint) (*models.OrderItem, error) {
	for _, items := range m.repo.items {
		for _, item := range items {
			if item.ID == id {
				return &item, nil
			}
		}
	}
	return nil, errNotFound
}

func (m *mockOrderItemRepo) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	return m.repo.items[orderID], nil
}

func seedOrder(t *testing.T, repo *mockOrderRepo, total float64, items []models.OrderItem) *models.Order {
	t.Helper()
	order := &models.Order{
		Name:        "Asha Nair",
		Email:       "asha@example.com",
		TotalAmount: total,
		Status:      string(models.OrderPending),
	}
	if err := repo.CreateWithItems(order, items); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, &mockOrderItemRepo{repo: repo})
	admin := AdminCapability{}

	order := seedOrder(t, repo, 25.0, []models.OrderItem{
		{ID: 1, ProductID: 1, ProductName: "P1", Quantity: 2, UnitPrice: 10.0, Subtotal: 20.0},
		{ID: 2, ProductID: 2, ProductName: "P2", Quantity: 1, UnitPrice: 5.0, Subtotal: 5.0},
	})

	updated, err := svc.UpdateStatus(admin, order.ID, models.OrderShipped)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != string(models.OrderShipped) {
		t.Fatalf("expected Shipped, got %s", updated.Status)
	}

	// Only the header changes; items stay untouched.
	items, err := svc.GetOrderItems(admin, order.ID)
	if err != nil {
		t.Fatalf("GetOrderItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Subtotal+items[1].Subtotal != updated.TotalAmount {
		t.Fatalf("items changed by status update")
	}
}

func TestOrderServiceUpdateStatusNotFound(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, &mockOrderItemRepo{repo: repo})

	_, err := svc.UpdateStatus(AdminCapability{}, 7, models.OrderShipped)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderServiceDeleteOrderCascades(t *testing.T) {
	repo := newMockOrderRepo()
	itemRepo := &mockOrderItemRepo{repo: repo}
	svc := NewOrderService(repo, itemRepo)
	admin := AdminCapability{}

	order := seedOrder(t, repo, 10.0, []models.OrderItem{
		{ID: 1, ProductID: 1, ProductName: "P1", Quantity: 1, UnitPrice: 10.0, Subtotal: 10.0},
	})

	if err := svc.DeleteOrder(admin, order.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}

	if _, err := svc.GetOrder(admin, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound after delete, got %v", err)
	}
	items, err := itemRepo.GetByOrderID(order.ID)
	if err != nil {
		t.Fatalf("GetByOrderID: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items after cascade delete, got %d", len(items))
	}
}

func TestOrderServiceDeleteOrderNotFound(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, &mockOrderItemRepo{repo: repo})

	if err := svc.DeleteOrder(AdminCapability{}, 7); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderServiceListOrdersNewestFirst(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, &mockOrderItemRepo{repo: repo})
	admin := AdminCapability{}

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	oldest := seedOrder(t, repo, 10.0, []models.OrderItem{{ID: 1, ProductID: 1, Quantity: 1, UnitPrice: 10.0, Subtotal: 10.0}})
	oldest.CreatedAt = base
	middle := seedOrder(t, repo, 5.0, []models.OrderItem{{ID: 2, ProductID: 2, Quantity: 1, UnitPrice: 5.0, Subtotal: 5.0}})
	middle.CreatedAt = base.Add(time.Hour)
	newest := seedOrder(t, repo, 7.5, []models.OrderItem{{ID: 3, ProductID: 3, Quantity: 1, UnitPrice: 7.5, Subtotal: 7.5}})
	newest.CreatedAt = base.Add(2 * time.Hour)

	orders, err := svc.ListOrders(admin)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}

	want := []uint{newest.ID, middle.ID, oldest.ID}
	for i, order := range orders {
		if order.ID != want[i] {
			t.Fatalf("expected newest-first order %v, got %v at position %d", want, order.ID, i)
		}
	}
}
