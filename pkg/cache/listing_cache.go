package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ListingCacheTTL is the time-to-live for cached marketplace listings.
	ListingCacheTTL = 24 * time.Hour

	listingCacheKeyPrefix = "listing"
)

// CachedListing is the denormalized marketplace read model stored in Redis.
// It is warmed by the worker from ItemListedEvents so browse reads do not
// touch the ledger. A zero price means the item was delisted.
type CachedListing struct {
	Owner     uuid.UUID `json:"owner"`
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Price     uint64    `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListingCache provides structured read/write operations for listing cache
// entries. Keys are scoped by owner. Key format: "listing:{owner}:{itemID}"
type ListingCache struct {
	client *RedisClient
}

// NewListingCache creates a new ListingCache backed by the given RedisClient.
func NewListingCache(client *RedisClient) *ListingCache {
	return &ListingCache{client: client}
}

// Get retrieves a cached listing by owner + item ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ListingCache) Get(ctx context.Context, owner, itemID uuid.UUID) (*CachedListing, error) {
	key := c.key(owner, itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	o, err := uuid.Parse(vals["owner"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner: %w", err)
	}
	id, err := uuid.Parse(vals["item_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse item_id: %w", err)
	}
	price, err := strconv.ParseUint(vals["price"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	return &CachedListing{
		Owner:     o,
		ItemID:    id,
		Name:      vals["name"],
		Unit:      vals["unit"],
		Price:     price,
		UpdatedAt: updatedAt,
	}, nil
}

// Set writes a cached listing as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ListingCache) Set(ctx context.Context, listing *CachedListing) error {
	key := c.key(listing.Owner, listing.ItemID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"owner", listing.Owner.String(),
		"item_id", listing.ItemID.String(),
		"name", listing.Name,
		"unit", listing.Unit,
		"price", strconv.FormatUint(listing.Price, 10),
		"updated_at", listing.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ListingCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached listing.
func (c *ListingCache) Delete(ctx context.Context, owner, itemID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(owner, itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "listing:{owner}:{itemID}"
func (c *ListingCache) key(owner, itemID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", listingCacheKeyPrefix, owner, itemID)
}
