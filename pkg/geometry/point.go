// Package geometry содержит базовые геометрические типы и операции над контурами.
package geometry

import "math"

// Point точка в пиксельных координатах изображения.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToFloat переводит точку в Point2D.
func (p Point) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// Point2D точка с вещественными координатами.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add возвращает сумму двух точек.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub возвращает разность двух точек.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance возвращает евклидово расстояние до другой точки.
func (p Point2D) Distance(other Point2D) float64 {
	return math.Sqrt(p.DistanceSq(other))
}

// DistanceSq возвращает квадрат расстояния до другой точки.
func (p Point2D) DistanceSq(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Cross векторное произведение OA x OB.
// Ось Y направлена вниз, поэтому положительное значение означает поворот по часовой стрелке на экране.
func Cross(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Rect прямоугольник, выровненный по осям.
type Rect struct {
	Min Point2D `json:"min"`
	Max Point2D `json:"max"`
}

// Contains проверяет, что точка лежит внутри прямоугольника или на его границе.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// BoundingBox вычисляет ограничивающий прямоугольник набора точек.
func BoundingBox(points []Point2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}
