package port

import (
	"context"
	"image"

	"fingermachine/internal/domain/entity"
	"fingermachine/pkg/geometry"
)

// PreviewSink приёмник отладочной отрисовки
type PreviewSink interface {
	// DrawMarker рисует центр маркера
	DrawMarker(marker entity.Marker)

	// DrawPath заливает контур трассы
	DrawPath(path geometry.Contour)

	// Present показывает или отправляет итоговую картинку
	Present(ctx context.Context) error
}

// Previewer создаёт приёмники отрисовки поверх исходного изображения
type Previewer interface {
	Open(base image.Image) PreviewSink
}
