package vision

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"fingermachine/internal/domain/entity"
	"fingermachine/pkg/geometry"
)

// whiteSheet создаёт белое изображение с заданными границами.
func whiteSheet(r image.Rectangle) *image.Gray {
	img := image.NewGray(r)
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func fillRect(img *image.Gray, x0, y0, x1, y1 int, v uint8) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
}

func TestRasterContourFinder_Square(t *testing.T) {
	img := whiteSheet(image.Rect(0, 0, 50, 50))
	fillRect(img, 10, 10, 29, 29, 0)

	contours, err := NewRasterContourFinder(DefaultThreshold, 0).FindContours(context.Background(), img)
	require.NoError(t, err)
	require.Len(t, contours, 1)
	require.ElementsMatch(t, geometry.Contour{{X: 10, Y: 10}, {X: 29, Y: 10}, {X: 29, Y: 29}, {X: 10, Y: 29}}, contours[0])
	require.InDelta(t, 19.0*19.0, contours[0].Area(), 1e-9)
}

func TestRasterContourFinder_TraceIsClosedLoop(t *testing.T) {
	img := whiteSheet(image.Rect(0, 0, 20, 20))
	fillRect(img, 5, 5, 12, 9, 0)
	fillRect(img, 5, 10, 7, 15, 0)

	mask := NewRasterContourFinder(DefaultThreshold, 0).binarize(img)
	labels := make([]int32, mask.w*mask.h)
	size := mask.fill(labels, 5, 5, 1)
	require.Equal(t, 8*5+3*6, size)

	raw := mask.trace(image.Pt(5, 5), size)
	require.Equal(t, geometry.Point{X: 5, Y: 5}, raw[0])
	for i := range raw {
		a, b := raw[i], raw[(i+1)%len(raw)]
		require.LessOrEqual(t, abs(a.X-b.X), 1)
		require.LessOrEqual(t, abs(a.Y-b.Y), 1)
		require.NotEqual(t, a, b)
	}
	require.Len(t, compressRuns(raw), 7)
}

func TestRasterContourFinder_SinglePixel(t *testing.T) {
	img := whiteSheet(image.Rect(0, 0, 10, 10))
	img.SetGray(4, 6, color.Gray{})

	contours, err := NewRasterContourFinder(DefaultThreshold, 0).FindContours(context.Background(), img)
	require.NoError(t, err)
	require.Equal(t, []geometry.Contour{{{X: 4, Y: 6}}}, contours)

	_, ok := contours[0].Centroid()
	require.False(t, ok)
}

func TestRasterContourFinder_ThresholdLevel(t *testing.T) {
	img := whiteSheet(image.Rect(0, 0, 30, 10))
	fillRect(img, 2, 2, 6, 6, 127)
	fillRect(img, 12, 2, 16, 6, 128)

	contours, err := NewRasterContourFinder(DefaultThreshold, 0).FindContours(context.Background(), img)
	require.NoError(t, err)
	require.Len(t, contours, 1)
	require.Equal(t, geometry.Rect{Min: geometry.Point2D{X: 2, Y: 2}, Max: geometry.Point2D{X: 6, Y: 6}}, contours[0].Bounds())
}

func TestRasterContourFinder_RasterOrderAndOffset(t *testing.T) {
	img := whiteSheet(image.Rect(100, 50, 160, 110))
	fillRect(img, 130, 55, 140, 60, 0)
	fillRect(img, 105, 80, 115, 90, 0)

	contours, err := NewRasterContourFinder(DefaultThreshold, 0).FindContours(context.Background(), img)
	require.NoError(t, err)
	require.Len(t, contours, 2)
	require.Equal(t, geometry.Point2D{X: 130, Y: 55}, contours[0].Bounds().Min)
	require.Equal(t, geometry.Point2D{X: 105, Y: 80}, contours[1].Bounds().Min)
}

func TestRasterContourFinder_DiagonalNeighboursConnect(t *testing.T) {
	img := whiteSheet(image.Rect(0, 0, 10, 10))
	img.SetGray(2, 2, color.Gray{})
	img.SetGray(3, 3, color.Gray{})
	img.SetGray(4, 4, color.Gray{})

	contours, err := NewRasterContourFinder(DefaultThreshold, 0).FindContours(context.Background(), img)
	require.NoError(t, err)
	require.Len(t, contours, 1)
	require.Equal(t, geometry.Contour{{X: 2, Y: 2}, {X: 4, Y: 4}}, contours[0])
}

func TestRasterContourFinder_Blur(t *testing.T) {
	img := whiteSheet(image.Rect(0, 0, 60, 60))
	fillRect(img, 15, 15, 44, 44, 0)

	contours, err := NewRasterContourFinder(DefaultThreshold, 1.5).FindContours(context.Background(), img)
	require.NoError(t, err)
	require.Len(t, contours, 1)
	require.InDelta(t, 29.0*29.0, contours[0].Area(), 120)
}

func TestRasterContourFinder_Errors(t *testing.T) {
	f := NewRasterContourFinder(DefaultThreshold, 0)

	_, err := f.FindContours(context.Background(), image.NewGray(image.Rect(0, 0, 0, 0)))
	require.ErrorIs(t, err, entity.ErrEmptyImage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.FindContours(ctx, whiteSheet(image.Rect(0, 0, 5, 5)))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompressRuns(t *testing.T) {
	line := geometry.Contour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}
	require.Equal(t, geometry.Contour{{X: 0, Y: 0}, {X: 3, Y: 0}}, compressRuns(line))

	short := geometry.Contour{{X: 1, Y: 1}, {X: 2, Y: 2}}
	require.Equal(t, short, compressRuns(short))
}

func TestNewContourFinder(t *testing.T) {
	f, err := NewContourFinder("", DefaultThreshold, 0)
	require.NoError(t, err)
	require.IsType(t, &RasterContourFinder{}, f)

	f, err = NewContourFinder(BackendGoCV, DefaultThreshold, 0)
	require.NoError(t, err)
	require.IsType(t, &GoCVContourFinder{}, f)

	_, err = NewContourFinder("webgl", DefaultThreshold, 0)
	require.Error(t, err)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
