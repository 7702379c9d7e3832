package render

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"fingermachine/internal/domain/port"
)

const (
	PresenterWindow   = "window"
	PresenterFile     = "file"
	PresenterTelegram = "telegram"
	PresenterNone     = "none"
)

// Presenter показывает или сохраняет готовое превью.
type Presenter interface {
	Present(ctx context.Context, img image.Image, caption string) error
}

// PresenterOptions параметры выбора презентера
type PresenterOptions struct {
	Kind             string
	File             string
	TelegramToken    string
	TelegramEndpoint string
	TelegramChatID   int64
}

// NewPresenter создаёт презентер по имени.
func NewPresenter(opts PresenterOptions) (Presenter, error) {
	var (
		presenter Presenter
		err       error
	)
	switch opts.Kind {
	case PresenterNone, "":
		return NopPresenter{}, nil
	case PresenterFile:
		presenter, err = NewFilePresenter(opts.File)
	case PresenterTelegram:
		presenter, err = NewTelegramPresenter(opts.TelegramToken, opts.TelegramEndpoint, opts.TelegramChatID)
	case PresenterWindow:
		presenter, err = NewWindowPresenter("fingermachine")
	default:
		return nil, fmt.Errorf("unknown preview %q", opts.Kind)
	}
	if err != nil {
		return nil, err
	}
	return presenter, nil
}

// NopPresenter ничего не показывает.
type NopPresenter struct{}

func (NopPresenter) Present(ctx context.Context, img image.Image, caption string) error {
	return nil
}

// FilePresenter сохраняет превью в файл, формат определяется расширением.
type FilePresenter struct {
	Path string
}

// NewFilePresenter создаёт презентер в файл.
func NewFilePresenter(path string) (*FilePresenter, error) {
	if path == "" {
		return nil, errors.New("preview file path is empty")
	}
	return &FilePresenter{Path: path}, nil
}

func (p *FilePresenter) Present(ctx context.Context, img image.Image, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := imaging.Save(img, p.Path); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	return nil
}

// Previewer открывает холсты с общей палитрой и презентером.
type Previewer struct {
	Palette   Palette
	Presenter Presenter
}

var _ port.Previewer = (*Previewer)(nil)

// NewPreviewer создаёт превьюер.
func NewPreviewer(palette Palette, presenter Presenter) *Previewer {
	return &Previewer{Palette: palette, Presenter: presenter}
}

func (p *Previewer) Open(base image.Image) port.PreviewSink {
	return NewOverlay(base, p.Palette, p.Presenter)
}
