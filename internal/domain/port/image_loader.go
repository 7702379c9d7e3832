package port

import (
	"context"
	"image"
)

// ImageLoader интерфейс загрузки изображения листа
type ImageLoader interface {
	// Load открывает и декодирует изображение по пути
	Load(ctx context.Context, path string) (image.Image, error)
}
