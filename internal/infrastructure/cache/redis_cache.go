// Package cache implementa el puerto ProductCache. El caché es best-effort:
// los errores de Redis se loguean y se tratan como cache miss, nunca se
// propagan a los casos de uso.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/tu-usuario/retail-pos/internal/application/ports"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

const (
	keyPrefix  = "product:"
	defaultTTL = 5 * time.Minute
)

var _ ports.ProductCache = (*RedisProductCache)(nil)

// RedisProductCache caché de productos sobre Redis, serializado en JSON.
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisProductCache construye el caché y conecta el cliente.
func NewRedisProductCache(addr, password string, db int, log *logger.Logger) *RedisProductCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisProductCache{client: client, ttl: defaultTTL, log: log}
}

// Ping verifica la conexión (para el arranque).
func (c *RedisProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (c *RedisProductCache) Close() error {
	return c.client.Close()
}

// Get busca un producto por ID. false tanto en miss como en error.
func (c *RedisProductCache) Get(id string) (*entity.Product, bool) {
	val, err := c.client.Get(context.Background(), keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("cache get falló")
		return nil, false
	}
	var p entity.Product
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("cache con payload corrupto")
		return nil, false
	}
	return &p, true
}

// Set guarda un producto con el TTL configurado.
func (c *RedisProductCache) Set(p *entity.Product) {
	if p == nil {
		return
	}
	payload, err := json.Marshal(p)
	if err != nil {
		c.log.Warn().Err(err).Str("id", p.ID).Msg("cache set: marshal falló")
		return
	}
	if err := c.client.Set(context.Background(), keyPrefix+p.ID, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("id", p.ID).Msg("cache set falló")
	}
}

// Delete purga un producto del caché.
func (c *RedisProductCache) Delete(id string) {
	if err := c.client.Del(context.Background(), keyPrefix+id).Err(); err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("cache delete falló")
	}
}
