package storage

import (
	"context"
	"image"
	"sync"

	"fingermachine/internal/domain/port"
)

// MemoryImageCache in-memory кэш декодированных изображений поверх загрузчика
type MemoryImageCache struct {
	mu     sync.RWMutex
	loader port.ImageLoader
	images map[string]image.Image
}

// NewMemoryImageCache создаёт новый кэш
func NewMemoryImageCache(loader port.ImageLoader) *MemoryImageCache {
	return &MemoryImageCache{
		loader: loader,
		images: make(map[string]image.Image),
	}
}

// Load возвращает изображение из кэша, загружает его если не найдено
func (c *MemoryImageCache) Load(ctx context.Context, path string) (image.Image, error) {
	c.mu.RLock()
	img, exists := c.images[path]
	c.mu.RUnlock()

	if exists {
		return img, nil
	}

	img, err := c.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Параллельная загрузка могла успеть раньше.
	if cached, ok := c.images[path]; ok {
		img = cached
	} else {
		c.images[path] = img
	}
	c.mu.Unlock()

	return img, nil
}

// Evict удаляет изображение из кэша
func (c *MemoryImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len возвращает число изображений в кэше
func (c *MemoryImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Проверка реализации интерфейса
var _ port.ImageLoader = (*MemoryImageCache)(nil)
