package entity

import "fingermachine/pkg/geometry"

// PathPolicy правило приёма кандидата в трассу
type PathPolicy string

const (
	PathPolicyAny     PathPolicy = "any"     // принимается любой кандидат
	PathPolicyBounds  PathPolicy = "bounds"  // центр внутри габаритов реперов
	PathPolicyPolygon PathPolicy = "polygon" // центр внутри четырёхугольника реперов
)

// DetectionResult хранит итог разбора листа.
type DetectionResult struct {
	ImageWidth     int              `json:"image_width"`
	ImageHeight    int              `json:"image_height"`
	Markers        Markers          `json:"markers"`
	Borders        *BorderLayout    `json:"borders,omitempty"`
	Path           geometry.Contour `json:"path,omitempty"`
	PathCandidates int              `json:"path_candidates"`
}

// HasPath сообщает, найдена ли трасса.
func (r *DetectionResult) HasPath() bool {
	return len(r.Path) > 0
}
