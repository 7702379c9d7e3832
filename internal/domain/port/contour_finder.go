package port

import (
	"context"
	"image"

	"fingermachine/pkg/geometry"
)

// ContourFinder интерфейс выделения контуров
type ContourFinder interface {
	// FindContours бинаризует изображение и возвращает контуры тёмных областей
	FindContours(ctx context.Context, img image.Image) ([]geometry.Contour, error)
}
