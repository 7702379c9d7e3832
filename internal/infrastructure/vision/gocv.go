//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"fingermachine/internal/domain/entity"
	"fingermachine/internal/domain/port"
	"fingermachine/pkg/geometry"
)

type GoCVContourFinder struct {
	Threshold  uint8
	BlurRadius float64
}

var _ port.ContourFinder = (*GoCVContourFinder)(nil)

// NewGoCVContourFinder создаёт поиск контуров на OpenCV.
func NewGoCVContourFinder(threshold uint8, blurRadius float64) *GoCVContourFinder {
	return &GoCVContourFinder{Threshold: threshold, BlurRadius: blurRadius}
}

// FindContours переводит изображение в серое, применяет обратный порог и
// возвращает все контуры со сжатием прямых участков.
func (f *GoCVContourFinder) FindContours(ctx context.Context, img image.Image) ([]geometry.Contour, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, entity.ErrEmptyImage
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image to mat: %w", err)
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, entity.ErrEmptyImage
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	// Подавляем мелкий шум перед порогом.
	src := gray
	if f.BlurRadius > 0 {
		k := 2*int(math.Ceil(f.BlurRadius)) + 1
		blurred := gocv.NewMat()
		defer blurred.Close()
		gocv.GaussianBlur(gray, &blurred, image.Pt(k, k), f.BlurRadius, f.BlurRadius, gocv.BorderDefault)
		src = blurred
	}

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(src, &thresh, float32(f.Threshold), 255, gocv.ThresholdBinaryInv)

	contours := gocv.FindContours(thresh, gocv.RetrievalList, gocv.ChainApproxSimple)
	defer contours.Close()

	offset := img.Bounds().Min
	out := make([]geometry.Contour, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		points := contours.At(i).ToPoints()
		c := make(geometry.Contour, len(points))
		for k, p := range points {
			c[k] = geometry.Point{X: p.X + offset.X, Y: p.Y + offset.Y}
		}
		out = append(out, c)
	}
	return out, nil
}
