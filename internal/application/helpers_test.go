package app

import (
	"context"
	"errors"
	"image"
	"math"

	"fingermachine/internal/domain/entity"
	"fingermachine/internal/domain/port"
	"fingermachine/pkg/geometry"
)

// polygon строит плотный контур через каждую целую точку рёбер.
func polygon(vertices ...geometry.Point) geometry.Contour {
	var c geometry.Contour
	for i, a := range vertices {
		b := vertices[(i+1)%len(vertices)]
		steps := max(abs(b.X-a.X), abs(b.Y-a.Y))
		for s := 0; s < steps; s++ {
			t := float64(s) / float64(steps)
			c = append(c, geometry.Point{
				X: int(math.Round(float64(a.X) + t*float64(b.X-a.X))),
				Y: int(math.Round(float64(a.Y) + t*float64(b.Y-a.Y))),
			})
		}
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func triangle(x, y, size int) geometry.Contour {
	return polygon(geometry.Point{X: x, Y: y}, geometry.Point{X: x + size, Y: y}, geometry.Point{X: x, Y: y + size})
}

func square(x, y, size int) geometry.Contour {
	return polygon(
		geometry.Point{X: x, Y: y}, geometry.Point{X: x + size, Y: y},
		geometry.Point{X: x + size, Y: y + size}, geometry.Point{X: x, Y: y + size},
	)
}

func pentagon(cx, cy, r float64) geometry.Contour {
	vertices := make([]geometry.Point, 5)
	for i := range vertices {
		angle := -math.Pi/2 + float64(i)*2*math.Pi/5
		vertices[i] = geometry.Point{
			X: int(math.Round(cx + r*math.Cos(angle))),
			Y: int(math.Round(cy + r*math.Sin(angle))),
		}
	}
	return polygon(vertices...)
}

// blob крест с двенадцатью вершинами, левый верхний угол габарита в (x, y).
func blob(x, y, arm int) geometry.Contour {
	p := func(dx, dy int) geometry.Point { return geometry.Point{X: x + dx*arm, Y: y + dy*arm} }
	return polygon(
		p(1, 0), p(2, 0), p(2, 1), p(3, 1), p(3, 2), p(2, 2),
		p(2, 3), p(1, 3), p(1, 2), p(0, 2), p(0, 1), p(1, 1),
	)
}

type fakeFinder struct {
	contours []geometry.Contour
	err      error
}

func (f *fakeFinder) FindContours(ctx context.Context, img image.Image) ([]geometry.Contour, error) {
	return f.contours, f.err
}

type fakeLoader struct {
	img   image.Image
	calls int
}

func (l *fakeLoader) Load(ctx context.Context, path string) (image.Image, error) {
	l.calls++
	if l.img == nil {
		return nil, errors.New("no such image")
	}
	return l.img, nil
}

type recordingSink struct {
	markers   []entity.Marker
	paths     []geometry.Contour
	presented bool
}

func (s *recordingSink) DrawMarker(marker entity.Marker) { s.markers = append(s.markers, marker) }
func (s *recordingSink) DrawPath(path geometry.Contour) { s.paths = append(s.paths, path) }
func (s *recordingSink) Present(ctx context.Context) error { s.presented = true; return nil }

type recordingPreviewer struct {
	base image.Image
	sink *recordingSink
}

func (p *recordingPreviewer) Open(base image.Image) port.PreviewSink {
	p.base = base
	p.sink = &recordingSink{}
	return p.sink
}

var (
	_ port.ContourFinder = (*fakeFinder)(nil)
	_ port.ImageLoader   = (*fakeLoader)(nil)
	_ port.Previewer     = (*recordingPreviewer)(nil)
)
