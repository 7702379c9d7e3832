package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"fingermachine/internal/domain/entity"
	"fingermachine/internal/domain/port"
)

// DetectionService находит маркеры и трассу на фотографии листа.
type DetectionService struct {
	loader     port.ImageLoader
	finder     port.ContourFinder
	classifier *Classifier
	selector   *PathSelector
	strategy   entity.BorderStrategy
	previewer  port.Previewer
	log        *logrus.Entry
}

// DetectionOptions параметры сервиса распознавания
type DetectionOptions struct {
	Classifier *Classifier
	Strategy   entity.BorderStrategy
	Policy     entity.PathPolicy
	Previewer  port.Previewer
}

// NewDetectionService создаёт сервис поверх загрузчика и поиска контуров.
func NewDetectionService(loader port.ImageLoader, finder port.ContourFinder, opts DetectionOptions, log *logrus.Entry) *DetectionService {
	classifier := opts.Classifier
	if classifier == nil {
		classifier = NewClassifier(DefaultEpsilonFactor, 0)
	}
	strategy := opts.Strategy
	if strategy == "" {
		strategy = entity.BorderStrategyPermutation
	}
	return &DetectionService{
		loader:     loader,
		finder:     finder,
		classifier: classifier,
		selector:   NewPathSelector(opts.Policy, log),
		strategy:   strategy,
		previewer:  opts.Previewer,
		log:        log,
	}
}

// Detect загружает изображение и распознаёт его.
func (s *DetectionService) Detect(ctx context.Context, path string) (*entity.DetectionResult, error) {
	if s.loader == nil {
		return nil, errors.New("image loader is not configured")
	}

	img, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	return s.DetectImage(ctx, img)
}

// DetectImage распознаёт уже декодированное изображение.
func (s *DetectionService) DetectImage(ctx context.Context, img image.Image) (*entity.DetectionResult, error) {
	if s.finder == nil {
		return nil, errors.New("contour finder is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contours, err := s.finder.FindContours(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("find contours: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	classified := s.classifier.Classify(contours)
	bounds := img.Bounds()
	result := &entity.DetectionResult{
		ImageWidth:     bounds.Dx(),
		ImageHeight:    bounds.Dy(),
		Markers:        classified.Markers,
		PathCandidates: len(classified.Candidates),
	}

	borders := classified.Markers.Points(entity.CategoryBorders)
	layout, err := ResolveBorders(borders, s.strategy)
	switch {
	case err == nil:
		result.Borders = layout
	case errors.Is(err, entity.ErrIncompleteBorders):
		s.log.WithField("borders", len(borders)).Debug("border layout is not resolved")
	default:
		return nil, err
	}

	result.Path = s.selector.Select(classified.Candidates, borders, layout)

	s.log.WithFields(logrus.Fields{
		"contours":   len(contours),
		"borders":    result.Markers.Count(entity.CategoryBorders),
		"start":      result.Markers.Count(entity.CategoryStart),
		"end":        result.Markers.Count(entity.CategoryEnd),
		"candidates": result.PathCandidates,
	}).Debug("image classified")

	return result, nil
}

// Preview рисует маркеры и трассу поверх исходного изображения и показывает результат.
func (s *DetectionService) Preview(ctx context.Context, path string, result *entity.DetectionResult) error {
	if s.previewer == nil {
		return errors.New("previewer is not configured")
	}
	if result == nil {
		return errors.New("detection result is nil")
	}
	if s.loader == nil {
		return errors.New("image loader is not configured")
	}

	img, err := s.loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}

	sink := s.previewer.Open(img)
	for _, category := range entity.Categories {
		for _, marker := range result.Markers[category] {
			sink.DrawMarker(marker)
		}
	}
	if result.HasPath() {
		sink.DrawPath(result.Path)
	}
	return sink.Present(ctx)
}
