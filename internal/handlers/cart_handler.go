package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sharongvarghese/ShopCart/internal/services"

	"github.com/gin-gonic/gin"
)

const noticeTTL = 5 * time.Minute

// NoticeStore queues the transient notices shown after cart and checkout
// actions. Implemented by the redis client.
type NoticeStore interface {
	SetNotice(ctx context.Context, sessionID, notice string, ttl time.Duration) error
	PopNotice(ctx context.Context, sessionID string) (string, error)
}

// queueNotice stores a one-shot notice for the session. A lost notice is
// cosmetic; the state change it reports has already been saved.
func queueNotice(c *gin.Context, store NoticeStore, message string) {
	_ = store.SetNotice(c.Request.Context(), sessionID(c), message, noticeTTL)
}

type CartHandler struct {
	cartService services.CartService
	notices     NoticeStore
}

func NewCartHandler(cartService services.CartService, notices NoticeStore) *CartHandler {
	return &CartHandler{cartService: cartService, notices: notices}
}

func productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return uint(id), true
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	notice, _ := h.notices.PopNotice(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, gin.H{
		"items":  cart.Items,
		"total":  cart.Total(),
		"count":  cart.Count(),
		"notice": notice,
	})
}

// POST /cart/items/:product_id
func (h *CartHandler) AddToCart(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Add(c.Request.Context(), sessionID(c), productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			queueNotice(c, h.notices, "Product not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to cart"})
		return
	}

	queueNotice(c, h.notices, "Added to cart")
	c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": cart.Total(), "count": cart.Count()})
}

// DELETE /cart/items/:product_id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Remove(c.Request.Context(), sessionID(c), productID)
	if err != nil {
		if errors.Is(err, services.ErrNotInCart) {
			// Not fatal: the cart simply did not hold the product.
			queueNotice(c, h.notices, "Item was not in your cart")
			c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": cart.Total(), "count": cart.Count()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove from cart"})
		return
	}

	queueNotice(c, h.notices, "Removed from cart")
	c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": cart.Total(), "count": cart.Count()})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PUT /cart/items/:product_id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	cart, err := h.cartService.SetQuantity(c.Request.Context(), sessionID(c), productID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": cart.Total(), "count": cart.Count()})
}

type adjustRequest struct {
	Direction string `json:"direction" binding:"required,oneof=increase decrease"`
}

// POST /cart/items/:product_id/adjust
func (h *CartHandler) AdjustQuantity(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be increase or decrease"})
		return
	}

	cart, err := h.cartService.Adjust(c.Request.Context(), sessionID(c), productID, services.AdjustDirection(req.Direction))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": cart.Total(), "count": cart.Count()})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context(), sessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}

	queueNotice(c, h.notices, "Cart cleared")
	c.JSON(http.StatusOK, gin.H{"items": gin.H{}, "total": 0, "count": 0})
}

type CheckoutHandler struct {
	checkoutService services.CheckoutService
	notices         NoticeStore
}

func NewCheckoutHandler(checkoutService services.CheckoutService, notices NoticeStore) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, notices: notices}
}

// POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var form services.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID(c), form)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			queueNotice(c, h.notices, "Your cart is empty")
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	// Payment is not wired up yet; orders wait in Pending until it is.
	queueNotice(c, h.notices,
		fmt.Sprintf("Order #%d placed. Payment is under maintenance; your order is awaiting payment.", order.ID))
	c.JSON(http.StatusCreated, gin.H{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"status":       order.Status,
		"message":      "order placed, awaiting payment",
	})
}
