package storage

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // регистрация BMP
	_ "golang.org/x/image/tiff" // регистрация TIFF
	_ "golang.org/x/image/webp" // регистрация WebP

	"fingermachine/internal/domain/entity"
	"fingermachine/internal/domain/port"
)

// FileImageLoader читает изображения с диска
type FileImageLoader struct {
	// MaxSide ограничивает большую сторону, 0 оставляет размер как есть.
	MaxSide int
}

// NewFileImageLoader создаёт загрузчик
func NewFileImageLoader(maxSide int) *FileImageLoader {
	return &FileImageLoader{MaxSide: maxSide}
}

// Load декодирует файл с учётом EXIF-ориентации и при необходимости уменьшает его.
func (l *FileImageLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("open image %s: %w", path, entity.ErrEmptyImage)
	}

	if l.MaxSide > 0 && (b.Dx() > l.MaxSide || b.Dy() > l.MaxSide) {
		img = imaging.Fit(img, l.MaxSide, l.MaxSide, imaging.Lanczos)
	}
	return img, nil
}

// Проверка реализации интерфейса
var _ port.ImageLoader = (*FileImageLoader)(nil)
