package vision

import (
	"context"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"fingermachine/internal/domain/entity"
	"fingermachine/internal/domain/port"
	"fingermachine/pkg/geometry"
)

// DefaultThreshold уровень бинаризации: тёмнее или равно считается фигурой.
const DefaultThreshold = 127

// RasterContourFinder ищет контуры без OpenCV.
type RasterContourFinder struct {
	Threshold  uint8
	BlurRadius float64
}

var _ port.ContourFinder = (*RasterContourFinder)(nil)

// NewRasterContourFinder создаёт поиск контуров на чистом Go.
func NewRasterContourFinder(threshold uint8, blurRadius float64) *RasterContourFinder {
	return &RasterContourFinder{Threshold: threshold, BlurRadius: blurRadius}
}

// FindContours бинаризует изображение обратным порогом и обходит внешнюю
// границу каждой 8-связной тёмной области. Порядок контуров совпадает с
// порядком первых пикселей областей при построчном обходе.
func (f *RasterContourFinder) FindContours(ctx context.Context, img image.Image) ([]geometry.Contour, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, entity.ErrEmptyImage
	}

	mask := f.binarize(img)
	offset := img.Bounds().Min

	var contours []geometry.Contour
	labels := make([]int32, mask.w*mask.h)
	var label int32
	for y := 0; y < mask.h; y++ {
		for x := 0; x < mask.w; x++ {
			i := y*mask.w + x
			if !mask.fg[i] || labels[i] != 0 {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			label++
			size := mask.fill(labels, x, y, label)
			contour := compressRuns(mask.trace(image.Pt(x, y), size))
			for k := range contour {
				contour[k].X += offset.X
				contour[k].Y += offset.Y
			}
			contours = append(contours, contour)
		}
	}
	return contours, nil
}

// binarize размывает изображение, переводит его в оттенки серого с весами
// 0.299/0.587/0.114 и отмечает пиксели не ярче порога.
func (f *RasterContourFinder) binarize(img image.Image) *binaryMask {
	var src image.Image = img
	if f.BlurRadius > 0 {
		src = blur.Gaussian(img, f.BlurRadius)
	}
	gray := imaging.Grayscale(src)

	b := gray.Bounds()
	mask := &binaryMask{w: b.Dx(), h: b.Dy(), fg: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < mask.h; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+mask.w*4]
		for x := 0; x < mask.w; x++ {
			mask.fg[y*mask.w+x] = row[x*4] <= f.Threshold
		}
	}
	return mask
}
