package geometry

import "math"

// ApproxPolyDP упрощает контур алгоритмом Рамера-Дугласа-Пекера с допуском epsilon.
//
// Для замкнутого контура кольцо разрезается в двух взаимно удалённых вершинах,
// и каждая из двух цепочек упрощается отдельно. Точки разреза не выбраны самим
// алгоритмом, поэтому после упрощения они проверяются тем же допуском.
// Исходный контур не изменяется.
func ApproxPolyDP(c Contour, epsilon float64, closed bool) Contour {
	n := len(c)
	if n <= 2 {
		return append(Contour(nil), c...)
	}

	if !closed {
		keep := make([]bool, n)
		keep[0], keep[n-1] = true, true
		simplifyRange(c, 0, n-1, epsilon, keep)
		return collectKept(c, keep)
	}

	start := farthestFrom(c, 0)
	end := farthestFrom(c, start)
	if c[start] == c[end] {
		return Contour{c[start]}
	}

	// Кольцо начинается в start и замыкается его копией.
	ring := make(Contour, 0, n+1)
	ring = append(ring, c[start:]...)
	ring = append(ring, c[:start]...)
	ring = append(ring, c[start])

	mid := (end - start + n) % n
	keep := make([]bool, len(ring))
	keep[0], keep[mid] = true, true
	simplifyRange(ring, 0, mid, epsilon, keep)
	simplifyRange(ring, mid, len(ring)-1, epsilon, keep)
	keep[len(ring)-1] = false

	return dropCollinear(collectKept(ring, keep), epsilon)
}

// dropCollinear убирает вершины, лежащие между соседями не дальше tol от их хорды.
// Многоугольник не упрощается меньше чем до трёх вершин.
func dropCollinear(c Contour, tol float64) Contour {
	for len(c) > 3 {
		removed := false
		for i := 0; i < len(c) && len(c) > 3; {
			n := len(c)
			prev, p, next := c[(i+n-1)%n].ToFloat(), c[i].ToFloat(), c[(i+1)%n].ToFloat()
			between := (p.X-prev.X)*(next.X-p.X)+(p.Y-prev.Y)*(next.Y-p.Y) >= 0
			if between && perpendicularDistance(p, prev, next) <= tol {
				c = append(c[:i], c[i+1:]...)
				removed = true
				continue
			}
			i++
		}
		if !removed {
			break
		}
	}
	return c
}

// simplifyRange отмечает точки между first и last, удалённые от хорды больше чем на epsilon.
func simplifyRange(points Contour, first, last int, epsilon float64, keep []bool) {
	if last-first < 2 {
		return
	}

	a, b := points[first].ToFloat(), points[last].ToFloat()
	maxDist, index := -1.0, -1
	for i := first + 1; i < last; i++ {
		d := perpendicularDistance(points[i].ToFloat(), a, b)
		if d > maxDist {
			maxDist, index = d, i
		}
	}

	if maxDist > epsilon {
		keep[index] = true
		simplifyRange(points, first, index, epsilon, keep)
		simplifyRange(points, index, last, epsilon, keep)
	}
}

// perpendicularDistance расстояние от точки p до прямой a-b.
func perpendicularDistance(p, a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return p.Distance(a)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / math.Sqrt(dx*dx+dy*dy)
}

func farthestFrom(c Contour, from int) int {
	base := c[from].ToFloat()
	best, bestDist := from, 0.0
	for i, p := range c {
		if d := base.DistanceSq(p.ToFloat()); d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func collectKept(points Contour, keep []bool) Contour {
	result := make(Contour, 0, len(points))
	for i, k := range keep {
		if k {
			result = append(result, points[i])
		}
	}
	return result
}

// PointInPolygon проверяет попадание точки в многоугольник методом трассировки луча.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
