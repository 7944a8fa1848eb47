package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"storefront/internal/cart"
	"storefront/internal/store"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// CartSession is the cart snapshot kept between requests of one shopper.
type CartSession struct {
	Items     []cart.Item `json:"items"`
	UpdatedAt time.Time   `json:"updated_at"`
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

// Collection storage, satisfies store.Backend
func (c *Client) Load(name string) ([]byte, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "collection:"+name).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return val, nil
}

func (c *Client) Save(name string, payload []byte) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "collection:"+name, payload, 0).Err()
}

// Carts returns a cart session store whose entries expire after ttl of
// inactivity.
func (c *Client) Carts(ttl time.Duration) *CartSessions {
	return &CartSessions{rdb: c.rdb, ttl: ttl}
}

type CartSessions struct {
	rdb *redis.Client
	ttl time.Duration
}

func (s *CartSessions) LoadCart(cartID string) ([]cart.Item, bool, error) {
	ctx := context.Background()
	val, err := s.rdb.Get(ctx, "cart:"+cartID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cart: %w", err)
	}

	var session CartSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return session.Items, true, nil
}

func (s *CartSessions) SaveCart(cartID string, items []cart.Item) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(CartSession{Items: items, UpdatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	return s.rdb.Set(ctx, "cart:"+cartID, jsonData, s.ttl).Err()
}

func (s *CartSessions) DeleteCart(cartID string) error {
	ctx := context.Background()
	return s.rdb.Del(ctx, "cart:"+cartID).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
