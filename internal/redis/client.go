package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sharongvarghese/ShopCart/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// SessionData holds the authenticated user's session state. The cart is
// stored under its own key so cart traffic never rewrites auth state.
type SessionData struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Cart storage

// GetCart returns the cart stored for the session, or a fresh empty cart if
// none exists yet. A missing key is not an error.
func (c *Client) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	val, err := c.rdb.Get(ctx, "cart:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return models.NewCart(), nil
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = map[uint]models.CartLine{}
	}

	return &cart, nil
}

func (c *Client) SaveCart(ctx context.Context, sessionID string, cart *models.Cart, ttl time.Duration) error {
	jsonData, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) DeleteCart(ctx context.Context, sessionID string) error {
	return c.rdb.Del(ctx, "cart:"+sessionID).Err()
}

// Session management

func (c *Client) SetSession(ctx context.Context, sessionID string, data *SessionData, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := c.rdb.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return c.rdb.Del(ctx, "session:"+sessionID).Err()
}

// Flash notices

// SetNotice queues a one-shot human-readable notice for the session, shown
// after the redirect that follows a cart or checkout action.
func (c *Client) SetNotice(ctx context.Context, sessionID, notice string, ttl time.Duration) error {
	return c.rdb.Set(ctx, "notice:"+sessionID, notice, ttl).Err()
}

// PopNotice returns the pending notice and removes it. An empty string means
// no notice was queued.
func (c *Client) PopNotice(ctx context.Context, sessionID string) (string, error) {
	val, err := c.rdb.GetDel(ctx, "notice:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get notice: %w", err)
	}
	return val, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
