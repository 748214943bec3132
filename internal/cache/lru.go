package cache

import (
	"container/list"
	"context"
	"fmt"
	"log"
	"sync"

	"delivery_service/internal/database"
	"delivery_service/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=lru.go -destination=./mocks/cache_mock.go -package=mocks Cache

// Cache определяет интерфейс для кэширования.
// Контекст добавлен для поддержки сквозной трассировки.
type Cache interface {
	Set(ctx context.Context, key string, value interface{})
	Get(ctx context.Context, key string) (interface{}, bool)
	Delete(ctx context.Context, key string)
}

// ZoneKey - ключ кэша для набора активных зон компании.
func ZoneKey(companyID int64) string {
	return fmt.Sprintf("zones:%d", companyID)
}

// lruCache реализует LRU (Least Recently Used) кэш.
type lruCache struct {
	mu       sync.RWMutex
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	tracer   trace.Tracer // Для трассировки
}

type cacheItem struct {
	key   string
	value interface{}
}

// NewLRUCache создает новый LRU-кэш с заданной емкостью.
func NewLRUCache(capacity int) Cache {
	return &lruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
		tracer:   otel.Tracer("lru-cache"),
	}
}

func (c *lruCache) Set(ctx context.Context, key string, value interface{}) {
	_, span := c.tracer.Start(ctx, "Cache.Set")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return
	}

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*cacheItem).value = value
		return
	}

	if c.queue.Len() >= c.capacity {
		c.removeOldest()
	}

	item := &cacheItem{key: key, value: value}
	element := c.queue.PushFront(item)
	c.items[key] = element

	metrics.CacheSize.Set(float64(c.queue.Len()))
}

func (c *lruCache) Get(ctx context.Context, key string) (interface{}, bool) {
	_, span := c.tracer.Start(ctx, "Cache.Get")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		return element.Value.(*cacheItem).value, true
	}

	return nil, false
}

// Delete инвалидирует ключ (используется при изменении зон компании).
func (c *lruCache) Delete(ctx context.Context, key string) {
	_, span := c.tracer.Start(ctx, "Cache.Delete")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[key]; exists {
		item := c.queue.Remove(element).(*cacheItem)
		delete(c.items, item.key)
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

// removeOldest удаляет самый старый элемент (внутренняя функция, мьютекс уже захвачен).
func (c *lruCache) removeOldest() {
	element := c.queue.Back()
	if element != nil {
		item := c.queue.Remove(element).(*cacheItem)
		delete(c.items, item.key)

		metrics.CacheEvictions.Inc()
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

// WarmUp загружает наборы активных зон всех активных компаний в кэш.
// Выполняется на старте, чтобы первый расчет ставок не ходил в БД.
func WarmUp(ctx context.Context, storage database.Storage, cache Cache) error {
	log.Println("Выполняется прогрев кэша зон...")
	companies, err := storage.ListActiveCompanies(ctx)
	if err != nil {
		return err
	}

	for _, company := range companies {
		zones, err := storage.ActiveZonesByCompany(ctx, company.ID)
		if err != nil {
			return err
		}
		cache.Set(ctx, ZoneKey(company.ID), zones)
	}

	log.Printf("Кэш прогрет. Загружены зоны %d компаний.", len(companies))
	return nil
}
