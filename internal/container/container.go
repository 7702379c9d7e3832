package container

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"fingermachine/config"
	app "fingermachine/internal/application"
	"fingermachine/internal/domain/entity"
	"fingermachine/internal/domain/port"
	"fingermachine/internal/infrastructure/render"
	"fingermachine/internal/infrastructure/storage"
	"fingermachine/internal/infrastructure/vision"
)

type Container struct {
	Images           *storage.MemoryImageCache
	Finder           port.ContourFinder
	DetectionService *app.DetectionService
	PreviewKind      string
}

// New собирает сервисы приложения по конфигурации.
// Если окно превью недоступно в этой сборке, превью отключается с предупреждением.
func New(cfg *config.Config, log *logrus.Entry) (*Container, error) {
	images := storage.NewMemoryImageCache(storage.NewFileImageLoader(cfg.MaxSide))

	finder, err := vision.NewContourFinder(cfg.VisionBackend, uint8(cfg.Threshold), cfg.BlurRadius)
	if err != nil {
		return nil, err
	}

	palette, err := render.ParsePalette(cfg.MarkerColor, cfg.PathColor)
	if err != nil {
		return nil, err
	}

	previewKind := cfg.Preview
	presenter, err := render.NewPresenter(render.PresenterOptions{
		Kind:             cfg.Preview,
		File:             cfg.PreviewFile,
		TelegramToken:    cfg.TelegramToken,
		TelegramEndpoint: cfg.TelegramEndpoint,
		TelegramChatID:   cfg.TelegramChatID,
	})
	switch {
	case err == nil:
	case errors.Is(err, entity.ErrBackendUnavailable):
		log.WithError(err).Warnf("preview %q is not available, falling back to %q", cfg.Preview, render.PresenterNone)
		presenter, previewKind = render.NopPresenter{}, render.PresenterNone
	default:
		return nil, fmt.Errorf("create presenter: %w", err)
	}
	if bot, ok := presenter.(*render.TelegramPresenter); ok {
		log.WithField("bot", bot.BotName()).Info("authorized on telegram account")
	}

	detection := app.NewDetectionService(images, finder, app.DetectionOptions{
		Classifier: app.NewClassifier(cfg.EpsilonFactor, cfg.MinArea),
		Strategy:   entity.BorderStrategy(cfg.BorderStrategy),
		Policy:     entity.PathPolicy(cfg.PathPolicy),
		Previewer:  render.NewPreviewer(palette, presenter),
	}, log)

	return &Container{
		Images:           images,
		Finder:           finder,
		DetectionService: detection,
		PreviewKind:      previewKind,
	}, nil
}
