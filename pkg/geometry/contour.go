package geometry

// Contour упорядоченная последовательность граничных точек связной области.
type Contour []Point

// Moments нулевой и первые моменты замкнутого многоугольника.
type Moments struct {
	M00 float64 `json:"m00"`
	M10 float64 `json:"m10"`
	M01 float64 `json:"m01"`
}

// Points2D возвращает копию контура в вещественных координатах.
func (c Contour) Points2D() []Point2D {
	points := make([]Point2D, len(c))
	for i, p := range c {
		points[i] = p.ToFloat()
	}
	return points
}

// ArcLength возвращает длину ломаной, для замкнутого контура с учётом последнего отрезка.
func (c Contour) ArcLength(closed bool) float64 {
	n := len(c)
	if n < 2 {
		return 0
	}

	var length float64
	for i := 1; i < n; i++ {
		length += c[i-1].ToFloat().Distance(c[i].ToFloat())
	}
	if closed {
		length += c[n-1].ToFloat().Distance(c[0].ToFloat())
	}
	return length
}

// Moments считает моменты по формуле Грина для вершин контура.
// Знак нормализуется так, чтобы площадь M00 была неотрицательной
// независимо от направления обхода.
func (c Contour) Moments() Moments {
	n := len(c)
	if n < 3 {
		return Moments{}
	}

	var m Moments
	for i := 0; i < n; i++ {
		p, q := c[i], c[(i+1)%n]
		a := float64(p.X*q.Y - q.X*p.Y)
		m.M00 += a
		m.M10 += float64(p.X+q.X) * a
		m.M01 += float64(p.Y+q.Y) * a
	}
	m.M00 /= 2
	m.M10 /= 6
	m.M01 /= 6

	if m.M00 < 0 {
		m.M00, m.M10, m.M01 = -m.M00, -m.M10, -m.M01
	}
	return m
}

// Area возвращает площадь, ограниченную контуром.
func (c Contour) Area() float64 {
	return c.Moments().M00
}

// Centroid возвращает центр масс контура (M10/M00, M01/M00).
// Для вырожденного контура с нулевой площадью второй результат false.
func (c Contour) Centroid() (Point2D, bool) {
	m := c.Moments()
	if m.M00 == 0 {
		return Point2D{}, false
	}
	return Point2D{X: m.M10 / m.M00, Y: m.M01 / m.M00}, true
}

// Bounds возвращает ограничивающий прямоугольник контура.
func (c Contour) Bounds() Rect {
	return BoundingBox(c.Points2D())
}
