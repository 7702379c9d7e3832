// Package render рисует отладочное превью распознавания и доставляет его.
package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultMarkerColor = "#ff0000"
	DefaultPathColor   = "#ffff00"
)

// Palette цвета отрисовки
type Palette struct {
	Marker color.NRGBA
	Path   color.NRGBA
}

// DefaultPalette красные маркеры и жёлтая трасса.
func DefaultPalette() Palette {
	p, _ := ParsePalette(DefaultMarkerColor, DefaultPathColor)
	return p
}

// ParsePalette разбирает цвета в формате #rrggbb.
func ParsePalette(marker, path string) (Palette, error) {
	m, err := parseHex(marker)
	if err != nil {
		return Palette{}, fmt.Errorf("marker color: %w", err)
	}
	p, err := parseHex(path)
	if err != nil {
		return Palette{}, fmt.Errorf("path color: %w", err)
	}
	return Palette{Marker: m, Path: p}, nil
}

func parseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
