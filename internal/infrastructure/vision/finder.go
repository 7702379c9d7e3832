// Package vision содержит реализации поиска контуров на изображении.
package vision

import (
	"fmt"

	"fingermachine/internal/domain/port"
)

const (
	BackendRaster = "raster"
	BackendGoCV   = "gocv"
)

// NewContourFinder выбирает реализацию по имени бэкенда.
func NewContourFinder(backend string, threshold uint8, blurRadius float64) (port.ContourFinder, error) {
	switch backend {
	case BackendRaster, "":
		return NewRasterContourFinder(threshold, blurRadius), nil
	case BackendGoCV:
		return NewGoCVContourFinder(threshold, blurRadius), nil
	default:
		return nil, fmt.Errorf("unknown vision backend %q", backend)
	}
}
