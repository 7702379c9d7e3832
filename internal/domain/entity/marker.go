package entity

import "fingermachine/pkg/geometry"

// Category категория маркера на листе
type Category string

const (
	CategoryBorders Category = "borders" // треугольные реперы по краям листа
	CategoryStart   Category = "start"   // квадратная площадка старта
	CategoryEnd     Category = "end"     // пятиугольная площадка финиша
)

// Categories задаёт порядок вывода и отрисовки категорий.
var Categories = []Category{CategoryBorders, CategoryStart, CategoryEnd}

// ShapeTable отображает число вершин упрощённого контура на категорию маркера
type ShapeTable map[int]Category

// DefaultShapeTable возвращает новую таблицу: 3 -> borders, 4 -> start, 5 -> end.
func DefaultShapeTable() ShapeTable {
	return ShapeTable{
		3: CategoryBorders,
		4: CategoryStart,
		5: CategoryEnd,
	}
}

// Lookup возвращает категорию для числа вершин.
func (t ShapeTable) Lookup(vertices int) (Category, bool) {
	c, ok := t[vertices]
	return c, ok
}

// MaxVertices возвращает наибольшее число вершин в таблице.
// Контуры с большим числом вершин считаются кандидатами в трассу.
func (t ShapeTable) MaxVertices() int {
	maxKey := 0
	for k := range t {
		if k > maxKey {
			maxKey = k
		}
	}
	return maxKey
}

// Marker центр найденной фигуры с её категорией
type Marker struct {
	Category Category         `json:"category"`
	Center   geometry.Point2D `json:"center"`
	Vertices int              `json:"vertices"`
}

// Markers маркеры, сгруппированные по категориям в порядке обнаружения
type Markers map[Category][]Marker

// Add добавляет маркер в свою категорию.
func (m Markers) Add(marker Marker) {
	m[marker.Category] = append(m[marker.Category], marker)
}

// Count возвращает число маркеров категории.
func (m Markers) Count(category Category) int {
	return len(m[category])
}

// Points возвращает центры маркеров категории.
func (m Markers) Points(category Category) []geometry.Point2D {
	markers := m[category]
	points := make([]geometry.Point2D, len(markers))
	for i, marker := range markers {
		points[i] = marker.Center
	}
	return points
}
