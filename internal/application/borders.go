package app

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"fingermachine/internal/domain/entity"
	"fingermachine/pkg/geometry"
)

// Discriminant считает a²+b²-c² для треугольника p0-p1-p2, где
// a=|p0p1|, b=|p1p2|, c=|p0p2|. Ноль означает прямой угол в p1.
func Discriminant(p0, p1, p2 geometry.Point2D) float64 {
	return p0.DistanceSq(p1) + p1.DistanceSq(p2) - p0.DistanceSq(p2)
}

// ResolveBorders назначает роли трём реперам.
func ResolveBorders(points []geometry.Point2D, strategy entity.BorderStrategy) (*entity.BorderLayout, error) {
	if len(points) != 3 {
		return nil, fmt.Errorf("resolve borders: got %d: %w", len(points), entity.ErrIncompleteBorders)
	}

	switch strategy {
	case entity.BorderStrategySort:
		return resolveBySort(points), nil
	case entity.BorderStrategyPermutation, "":
		return resolveByPermutation(points), nil
	default:
		return nil, fmt.Errorf("unknown border strategy %q", strategy)
	}
}

// resolveByPermutation перебирает все 3! порядка и выбирает тот, где угол
// в средней точке ближе всего к прямому.
func resolveByPermutation(points []geometry.Point2D) *entity.BorderLayout {
	best := math.Inf(1)
	var order []int
	for _, perm := range combin.Permutations(len(points), len(points)) {
		disc := Discriminant(points[perm[0]], points[perm[1]], points[perm[2]])
		if math.Abs(disc) < math.Abs(best) {
			best, order = disc, perm
		}
	}

	corner := points[order[1]]
	a, b := points[order[0]], points[order[2]]
	// На экране (ось Y вниз) от bottom_left к top_right поворот по часовой стрелке.
	if geometry.Cross(corner, a, b) < 0 {
		a, b = b, a
	}
	return entity.NewBorderLayout(entity.BorderStrategyPermutation, corner, a, b, best)
}

// resolveBySort упорядочивает точки по (x, y): [bottom_left, top_right, bottom_right].
func resolveBySort(points []geometry.Point2D) *entity.BorderLayout {
	sorted := append([]geometry.Point2D(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	bottomLeft, topRight, bottomRight := sorted[0], sorted[1], sorted[2]
	return entity.NewBorderLayout(entity.BorderStrategySort, bottomRight, bottomLeft, topRight,
		Discriminant(bottomLeft, bottomRight, topRight))
}
