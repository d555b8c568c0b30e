package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the admin order management endpoints. All routes sit
// behind AdminMiddleware, which puts the capability in the context.
type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// GET /admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(adminCapability(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /admin/orders/:order_id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(adminCapability(c), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/orders/:order_id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
		return
	}

	order, err := h.orderService.UpdateStatus(adminCapability(c), id, status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// DELETE /admin/orders/:order_id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(adminCapability(c), id); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
