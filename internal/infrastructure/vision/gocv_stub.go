//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"fmt"
	"image"

	"fingermachine/internal/domain/entity"
	"fingermachine/pkg/geometry"
)

type GoCVContourFinder struct {
	Threshold  uint8
	BlurRadius float64
}

// NewGoCVContourFinder создаёт заглушку (без OpenCV).
func NewGoCVContourFinder(threshold uint8, blurRadius float64) *GoCVContourFinder {
	return &GoCVContourFinder{Threshold: threshold, BlurRadius: blurRadius}
}

// FindContours возвращает ошибку, если сборка без тега gocv.
func (f *GoCVContourFinder) FindContours(ctx context.Context, img image.Image) ([]geometry.Contour, error) {
	_ = ctx
	_ = img
	return nil, fmt.Errorf("gocv build tag is not enabled: %w", entity.ErrBackendUnavailable)
}
