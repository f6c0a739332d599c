// Package cache provides Redis-backed caching infrastructure.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/domain/prezzi"
)

// DefaultPrezziTTL bounds staleness if an invalidation is ever lost.
const DefaultPrezziTTL = 24 * time.Hour

// PrezziCache implements prezzi.Cache on Redis. Last-price lookups happen on
// every keystroke of the order form, so they bypass Postgres when possible.
type PrezziCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPrezziCache creates a Redis-backed last-price cache.
func NewPrezziCache(client *redis.Client, ttl time.Duration) *PrezziCache {
	if ttl <= 0 {
		ttl = DefaultPrezziTTL
	}
	return &PrezziCache{client: client, ttl: ttl}
}

func prezzoKey(clienteID, prodottoID id.ID) string {
	return fmt.Sprintf("prezzi:ultimo:%s:%s", clienteID, prodottoID)
}

// GetUltimo returns the cached last price, or not-found when the key is cold.
func (c *PrezziCache) GetUltimo(ctx context.Context, clienteID, prodottoID id.ID) (*types.Money, error) {
	val, err := c.client.Get(ctx, prezzoKey(clienteID, prodottoID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.NewNotFound("prezzo", prezzoKey(clienteID, prodottoID))
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	prezzo, err := types.NewMoneyFromString(val)
	if err != nil {
		// A corrupt value is treated as a miss; the next Set overwrites it.
		return nil, apperror.NewNotFound("prezzo", prezzoKey(clienteID, prodottoID))
	}
	return &prezzo, nil
}

// SetUltimo stores the last price with TTL.
func (c *PrezziCache) SetUltimo(ctx context.Context, clienteID, prodottoID id.ID, prezzo types.Money) error {
	if err := c.client.Set(ctx, prezzoKey(clienteID, prodottoID), prezzo.String(), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalida drops the cached price of a pair.
func (c *PrezziCache) Invalida(ctx context.Context, clienteID, prodottoID id.ID) error {
	if err := c.client.Del(ctx, prezzoKey(clienteID, prodottoID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Ensure interface compliance
var _ prezzi.Cache = (*PrezziCache)(nil)
