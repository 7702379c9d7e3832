//go:build !gocv
// +build !gocv

package render

import (
	"context"
	"fmt"
	"image"

	"fingermachine/internal/domain/entity"
)

type WindowPresenter struct {
	Title string
}

// NewWindowPresenter возвращает ошибку, если сборка без тега gocv.
func NewWindowPresenter(title string) (*WindowPresenter, error) {
	_ = title
	return nil, fmt.Errorf("gocv build tag is not enabled: %w", entity.ErrBackendUnavailable)
}

func (p *WindowPresenter) Present(ctx context.Context, img image.Image, caption string) error {
	_ = ctx
	_ = img
	_ = caption
	return fmt.Errorf("gocv build tag is not enabled: %w", entity.ErrBackendUnavailable)
}
