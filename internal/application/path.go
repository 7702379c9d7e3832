package app

import (
	"github.com/sirupsen/logrus"

	"fingermachine/internal/domain/entity"
	"fingermachine/pkg/geometry"
)

// PathSelector выбирает трассу среди кандидатов.
type PathSelector struct {
	Policy entity.PathPolicy
	log    *logrus.Entry
}

// NewPathSelector создаёт селектор с заданной политикой.
func NewPathSelector(policy entity.PathPolicy, log *logrus.Entry) *PathSelector {
	if policy == "" {
		policy = entity.PathPolicyPolygon
	}
	return &PathSelector{Policy: policy, log: log}
}

// Accept проверяет одного кандидата.
// Без раскладки реперов проверка по положению невозможна, кандидат принимается.
func (s *PathSelector) Accept(candidate geometry.Contour, borders []geometry.Point2D, layout *entity.BorderLayout) bool {
	center, ok := candidate.Centroid()
	if !ok {
		s.log.Debug("path candidate rejected: undefined centroid")
		return false
	}

	if s.Policy == entity.PathPolicyAny {
		return true
	}

	if layout == nil {
		s.log.WithField("borders", len(borders)).
			Warn("cannot check path placement without exactly three borders, accepting candidate")
		return true
	}

	switch s.Policy {
	case entity.PathPolicyBounds:
		return geometry.BoundingBox(layout.Quad()).Contains(center)
	default:
		return geometry.PointInPolygon(center, layout.Quad())
	}
}

// Select возвращает принятого кандидата наибольшей площади или nil.
func (s *PathSelector) Select(candidates []Candidate, borders []geometry.Point2D, layout *entity.BorderLayout) geometry.Contour {
	var (
		best     geometry.Contour
		bestArea = -1.0
	)
	for i, candidate := range candidates {
		if !s.Accept(candidate.Contour, borders, layout) {
			s.log.WithFields(logrus.Fields{
				"candidate": i,
				"policy":    s.Policy,
			}).Debug("path candidate rejected")
			continue
		}
		if area := candidate.Contour.Area(); area > bestArea {
			best, bestArea = candidate.Contour, area
		}
	}

	if best != nil {
		s.log.WithFields(logrus.Fields{
			"vertices": len(best),
			"area":     bestArea,
		}).Info("path detected")
	}
	return best
}
