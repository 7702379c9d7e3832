package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"fingermachine/internal/domain/entity"
	"fingermachine/internal/domain/port"
	"fingermachine/pkg/geometry"
)

// MarkerRadius внешний радиус точки маркера в пикселях.
const MarkerRadius = 4.5

const diskSegments = 32

// Overlay рисует маркеры и трассу на копии исходного изображения.
type Overlay struct {
	canvas    *image.NRGBA
	origin    image.Point
	palette   Palette
	presenter Presenter
	raster    *vector.Rasterizer
	counts    map[entity.Category]int
	hasPath   bool
}

var _ port.PreviewSink = (*Overlay)(nil)

// NewOverlay копирует base и готовит холст.
func NewOverlay(base image.Image, palette Palette, presenter Presenter) *Overlay {
	canvas := imaging.Clone(base)
	b := canvas.Bounds()
	return &Overlay{
		canvas:    canvas,
		origin:    base.Bounds().Min,
		palette:   palette,
		presenter: presenter,
		raster:    vector.NewRasterizer(b.Dx(), b.Dy()),
		counts:    make(map[entity.Category]int),
	}
}

// DrawMarker рисует закрашенный круг в центре маркера.
func (o *Overlay) DrawMarker(marker entity.Marker) {
	o.counts[marker.Category]++

	cx, cy := o.toCanvas(marker.Center)
	o.begin()
	for i := 0; i < diskSegments; i++ {
		angle := 2 * math.Pi * float64(i) / diskSegments
		x := float32(cx + MarkerRadius*math.Cos(angle))
		y := float32(cy + MarkerRadius*math.Sin(angle))
		if i == 0 {
			o.raster.MoveTo(x, y)
		} else {
			o.raster.LineTo(x, y)
		}
	}
	o.fill(o.palette.Marker)
}

// DrawPath заливает многоугольник трассы.
func (o *Overlay) DrawPath(path geometry.Contour) {
	if len(path) < 3 {
		return
	}
	o.hasPath = true

	o.begin()
	for i, p := range path {
		x, y := o.toCanvas(p.ToFloat())
		if i == 0 {
			o.raster.MoveTo(float32(x), float32(y))
		} else {
			o.raster.LineTo(float32(x), float32(y))
		}
	}
	o.fill(o.palette.Path)
}

// Present передаёт холст презентеру.
func (o *Overlay) Present(ctx context.Context) error {
	if o.presenter == nil {
		return nil
	}
	return o.presenter.Present(ctx, o.canvas, o.Caption())
}

// Caption краткая подпись с числом маркеров.
func (o *Overlay) Caption() string {
	path := "no"
	if o.hasPath {
		path = "yes"
	}
	return fmt.Sprintf("borders=%d start=%d end=%d path=%s",
		o.counts[entity.CategoryBorders], o.counts[entity.CategoryStart], o.counts[entity.CategoryEnd], path)
}

// Image возвращает холст.
func (o *Overlay) Image() image.Image {
	return o.canvas
}

// toCanvas переводит координаты изображения в координаты центра пикселя холста.
func (o *Overlay) toCanvas(p geometry.Point2D) (float64, float64) {
	return p.X - float64(o.origin.X) + 0.5, p.Y - float64(o.origin.Y) + 0.5
}

func (o *Overlay) begin() {
	b := o.canvas.Bounds()
	o.raster.Reset(b.Dx(), b.Dy())
}

func (o *Overlay) fill(c color.Color) {
	o.raster.ClosePath()
	o.raster.DrawOp = draw.Over
	o.raster.Draw(o.canvas, o.canvas.Bounds(), image.NewUniform(c), image.Point{})
}
