package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email" gorm:"not null"`
	Phone       string         `json:"phone" gorm:"not null"`
	Address     string         `json:"address" gorm:"type:text;not null"`
	Landmark    string         `json:"landmark"`
	City        string         `json:"city" gorm:"not null"`
	Pincode     string         `json:"pincode" gorm:"not null"`
	TotalAmount float64        `json:"total_amount" gorm:"not null"`
	Status      string         `json:"status" gorm:"default:'Pending'"`
	Items       []OrderItem    `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// OrderStatus is the closed set of states an order can be in. Status is only
// ever written through ParseOrderStatus so arbitrary strings never reach the
// database.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a raw string to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(s), nil
	default:
		return "", ErrInvalidOrderStatus
	}
}
