package entity

import "fingermachine/pkg/geometry"

// BorderRole роль репера в L-образной раскладке листа
type BorderRole string

const (
	RoleBottomRight BorderRole = "bottom_right" // прямой угол раскладки
	RoleBottomLeft  BorderRole = "bottom_left"
	RoleTopRight    BorderRole = "top_right"
	RoleTopLeft     BorderRole = "top_left" // достраивается, репера нет
)

// BorderStrategy способ распределения ролей между реперами
type BorderStrategy string

const (
	BorderStrategyPermutation BorderStrategy = "permutation"
	BorderStrategySort        BorderStrategy = "sort"
)

// BorderLayout реперы с назначенными ролями
type BorderLayout struct {
	Strategy     BorderStrategy   `json:"strategy"`
	BottomRight  geometry.Point2D `json:"bottom_right"`
	BottomLeft   geometry.Point2D `json:"bottom_left"`
	TopRight     geometry.Point2D `json:"top_right"`
	TopLeft      geometry.Point2D `json:"top_left"`
	Discriminant float64          `json:"discriminant"` // a²+b²-c² для угла в BottomRight
}

// NewBorderLayout собирает раскладку и достраивает четвёртый угол до параллелограмма.
func NewBorderLayout(strategy BorderStrategy, bottomRight, bottomLeft, topRight geometry.Point2D, discriminant float64) *BorderLayout {
	return &BorderLayout{
		Strategy:     strategy,
		BottomRight:  bottomRight,
		BottomLeft:   bottomLeft,
		TopRight:     topRight,
		TopLeft:      bottomLeft.Add(topRight).Sub(bottomRight),
		Discriminant: discriminant,
	}
}

// Roles возвращает точки по ролям.
func (l *BorderLayout) Roles() map[BorderRole]geometry.Point2D {
	return map[BorderRole]geometry.Point2D{
		RoleBottomRight: l.BottomRight,
		RoleBottomLeft:  l.BottomLeft,
		RoleTopRight:    l.TopRight,
		RoleTopLeft:     l.TopLeft,
	}
}

// Quad возвращает четырёхугольник листа в порядке обхода.
func (l *BorderLayout) Quad() []geometry.Point2D {
	return []geometry.Point2D{l.BottomLeft, l.BottomRight, l.TopRight, l.TopLeft}
}
