// Package station read-through кэш справочника станций в Redis.
// Ошибки Redis не ломают запрос: кэш пропускается, данные читаются из источника.
package station

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

const keyPrefix = "station:"

// Source справочник станций, который кэшируется
type Source interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
	List(ctx context.Context) ([]domain.Station, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache кэш станций
type Cache struct {
	client *redis.Client
	source Source
	ttl    time.Duration
	logger Logger
}

// NewCache создает кэш
func NewCache(client *redis.Client, source Source, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

// cachedStation формат хранения станции в Redis
type cachedStation struct {
	ID             int64   `json:"id"`
	StationID      string  `json:"stationId"`
	Title          string  `json:"title"`
	AddressLine    string  `json:"addressLine"`
	State          string  `json:"state"`
	Country        string  `json:"country"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	ConnectionType string  `json:"connectionType"`
	PowerKW        float64 `json:"powerKw"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	Rating         float64 `json:"rating"`
}

func toCached(s *domain.Station) cachedStation {
	return cachedStation{
		ID:             s.ID,
		StationID:      s.StationID,
		Title:          s.Title,
		AddressLine:    s.AddressLine,
		State:          s.State,
		Country:        s.Country,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
		ConnectionType: s.ConnectionType,
		PowerKW:        s.PowerKW,
		Quantity:       s.Quantity,
		Price:          s.Price,
		Rating:         s.Rating,
	}
}

func (c cachedStation) toDomain() *domain.Station {
	return &domain.Station{
		ID:             c.ID,
		StationID:      c.StationID,
		Title:          c.Title,
		AddressLine:    c.AddressLine,
		State:          c.State,
		Country:        c.Country,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		ConnectionType: c.ConnectionType,
		PowerKW:        c.PowerKW,
		Quantity:       c.Quantity,
		Price:          c.Price,
		Rating:         c.Rating,
	}
}

func key(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

// GetByID возвращает станцию из кэша или из источника.
// Ошибки источника (в том числе "не найдено") возвращаются как есть.
func (c *Cache) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	if s, ok := c.get(ctx, id); ok {
		return s, nil
	}

	s, err := c.source.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, s)
	return s, nil
}

// List каталог целиком не кэшируется, читается из источника
func (c *Cache) List(ctx context.Context) ([]domain.Station, error) {
	return c.source.List(ctx)
}

func (c *Cache) get(ctx context.Context, id int64) (*domain.Station, bool) {
	val, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("StationCache: failed to get station id=%d from redis: %v", id, err)
		return nil, false
	}

	var cached cachedStation
	if err := json.Unmarshal(val, &cached); err != nil {
		c.logger.Warn("StationCache: failed to unmarshal station id=%d: %v", id, err)
		return nil, false
	}
	return cached.toDomain(), true
}

func (c *Cache) set(ctx context.Context, s *domain.Station) {
	data, err := json.Marshal(toCached(s))
	if err != nil {
		c.logger.Warn("StationCache: failed to marshal station id=%d: %v", s.ID, err)
		return
	}
	if err := c.client.Set(ctx, key(s.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("StationCache: failed to set station id=%d in redis: %v", s.ID, err)
	}
}
