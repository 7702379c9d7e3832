package app

import (
	"fingermachine/internal/domain/entity"
	"fingermachine/pkg/geometry"
)

// DefaultEpsilonFactor доля длины контура, используемая как допуск упрощения.
const DefaultEpsilonFactor = 0.01

// Classifier распределяет контуры по категориям маркеров по числу вершин.
type Classifier struct {
	Table         entity.ShapeTable
	EpsilonFactor float64
	MinArea       float64
}

// Candidate контур, который может оказаться трассой
type Candidate struct {
	Contour  geometry.Contour
	Vertices int
}

// Classification итог классификации одного набора контуров
type Classification struct {
	Markers    entity.Markers
	Candidates []Candidate
}

// NewClassifier создаёт классификатор с таблицей по умолчанию.
func NewClassifier(epsilonFactor, minArea float64) *Classifier {
	if epsilonFactor <= 0 {
		epsilonFactor = DefaultEpsilonFactor
	}
	return &Classifier{
		Table:         entity.DefaultShapeTable(),
		EpsilonFactor: epsilonFactor,
		MinArea:       minArea,
	}
}

// Vertices возвращает число вершин упрощённого контура.
func (c *Classifier) Vertices(contour geometry.Contour) int {
	epsilon := c.EpsilonFactor * contour.ArcLength(true)
	return len(geometry.ApproxPolyDP(contour, epsilon, true))
}

// Classify разбирает контуры в порядке их следования.
// Маркер без определённого центра пропускается, контуры с числом вершин
// меньше минимального ключа таблицы игнорируются.
func (c *Classifier) Classify(contours []geometry.Contour) Classification {
	out := Classification{Markers: entity.Markers{}}
	maxVertices := c.Table.MaxVertices()

	for _, contour := range contours {
		if c.MinArea > 0 && contour.Area() < c.MinArea {
			continue
		}

		vertices := c.Vertices(contour)
		if category, ok := c.Table.Lookup(vertices); ok {
			center, ok := contour.Centroid()
			if !ok {
				continue
			}
			out.Markers.Add(entity.Marker{Category: category, Center: center, Vertices: vertices})
			continue
		}

		if vertices > maxVertices {
			out.Candidates = append(out.Candidates, Candidate{Contour: contour, Vertices: vertices})
		}
	}
	return out
}
