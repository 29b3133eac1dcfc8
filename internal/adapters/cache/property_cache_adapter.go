package cache_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
	"github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// PropertyCacheAdapter - декоратор над PropertyStoragePort с двухуровневым
// кэшем для чтения по slug: локальный ccache плюс опциональный Memcached.
// Все остальные операции проксируются в хранилище без изменений.
type PropertyCacheAdapter struct {
	inner     port.PropertyStoragePort
	local     *ccache.Cache[*domain.Property]
	memcached *memcache.Client
	localTTL  time.Duration
	remoteTTL time.Duration
	logger    port.LoggerPort
}

type CacheConfig struct {
	// MemcachedAddr - адрес Memcached. Пустая строка отключает второй уровень.
	MemcachedAddr string
	LocalTTL      time.Duration
	RemoteTTL     time.Duration
	MaxLocalItems int64
}

func NewPropertyCacheAdapter(inner port.PropertyStoragePort, cfg CacheConfig, logger port.LoggerPort) *PropertyCacheAdapter {
	if cfg.LocalTTL <= 0 {
		cfg.LocalTTL = 5 * time.Minute
	}
	if cfg.RemoteTTL <= 0 {
		cfg.RemoteTTL = 15 * time.Minute
	}
	if cfg.MaxLocalItems <= 0 {
		cfg.MaxLocalItems = 1000
	}

	var client *memcache.Client
	if cfg.MemcachedAddr != "" {
		client = memcache.New(cfg.MemcachedAddr)
		logger.Info("property cache initialized with memcached tier", port.Fields{
			"addr": cfg.MemcachedAddr,
		})
	} else {
		logger.Info("property cache initialized with local tier only", nil)
	}

	return &PropertyCacheAdapter{
		inner:     inner,
		local:     ccache.New(ccache.Configure[*domain.Property]().MaxSize(cfg.MaxLocalItems)),
		memcached: client,
		localTTL:  cfg.LocalTTL,
		remoteTTL: cfg.RemoteTTL,
		logger:    logger,
	}
}

func cacheKey(slug string) string {
	return fmt.Sprintf("property:slug:%s", slug)
}

// GetBySlug читает сквозь кэш: локальный уровень, затем Memcached,
// затем хранилище. Ошибки кэша не фатальны - падаем в хранилище.
func (a *PropertyCacheAdapter) GetBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	key := cacheKey(slug)

	if item := a.local.Get(key); item != nil && !item.Expired() {
		a.logger.Debug("property cache hit (local)", port.Fields{"slug": slug})
		return item.Value(), nil
	}

	if a.memcached != nil {
		if property, ok := a.getFromMemcached(key); ok {
			a.logger.Debug("property cache hit (memcached)", port.Fields{"slug": slug})
			a.local.Set(key, property, a.localTTL)
			return property, nil
		}
	}

	property, err := a.inner.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	a.store(key, property)
	return property, nil
}

func (a *PropertyCacheAdapter) getFromMemcached(key string) (*domain.Property, bool) {
	item, err := a.memcached.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			a.logger.Warn("failed to read from memcached", port.Fields{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var property domain.Property
	if err := json.Unmarshal(item.Value, &property); err != nil {
		a.logger.Warn("failed to unmarshal cached property", port.Fields{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}
	return &property, true
}

func (a *PropertyCacheAdapter) store(key string, property *domain.Property) {
	a.local.Set(key, property, a.localTTL)

	if a.memcached == nil {
		return
	}

	data, err := json.Marshal(property)
	if err != nil {
		a.logger.Warn("failed to marshal property for memcached", port.Fields{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	if err := a.memcached.Set(&memcache.Item{
		Key:        key,
		Value:      data,
		Expiration: int32(a.remoteTTL.Seconds()),
	}); err != nil {
		a.logger.Warn("failed to write to memcached", port.Fields{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (a *PropertyCacheAdapter) invalidate(slug string) {
	key := cacheKey(slug)
	a.local.Delete(key)

	if a.memcached == nil {
		return
	}
	if err := a.memcached.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		a.logger.Warn("failed to invalidate memcached entry", port.Fields{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Save сохраняет объект и сбрасывает его кэш, чтобы следующее чтение
// по slug увидело актуальные данные.
func (a *PropertyCacheAdapter) Save(ctx context.Context, property *domain.Property) error {
	if err := a.inner.Save(ctx, property); err != nil {
		return err
	}
	a.invalidate(property.Slug)
	return nil
}

func (a *PropertyCacheAdapter) Count(ctx context.Context, filter domain.PropertyFilter) (int64, error) {
	return a.inner.Count(ctx, filter)
}

func (a *PropertyCacheAdapter) FindPage(ctx context.Context, filter domain.PropertyFilter, page, pageSize int, includeTraces bool) ([]domain.Property, error) {
	return a.inner.FindPage(ctx, filter, page, pageSize, includeTraces)
}

func (a *PropertyCacheAdapter) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	return a.inner.GetByID(ctx, id)
}

func (a *PropertyCacheAdapter) FindByOwner(ctx context.Context, ownerID string, page, pageSize int, includeTraces bool) ([]domain.Property, int64, error) {
	return a.inner.FindByOwner(ctx, ownerID, page, pageSize, includeTraces)
}
