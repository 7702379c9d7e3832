//go:build gocv
// +build gocv

package render

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// WindowPresenter показывает превью в окне OpenCV до нажатия клавиши
type WindowPresenter struct {
	Title string
}

// NewWindowPresenter создаёт презентер окна.
func NewWindowPresenter(title string) (*WindowPresenter, error) {
	return &WindowPresenter{Title: title}, nil
}

func (p *WindowPresenter) Present(ctx context.Context, img image.Image, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("convert preview to mat: %w", err)
	}
	defer mat.Close()

	window := gocv.NewWindow(p.Title)
	defer window.Close()

	window.SetWindowTitle(fmt.Sprintf("%s: %s", p.Title, caption))
	window.IMShow(mat)
	window.WaitKey(0)
	return nil
}
