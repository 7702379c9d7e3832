package entity

import "errors"

var (
	// ErrEmptyImage изображение без пикселей
	ErrEmptyImage = errors.New("empty image")
	// ErrIncompleteBorders реперов не ровно три
	ErrIncompleteBorders = errors.New("exactly three border markers are required")
	// ErrBackendUnavailable бэкенд не собран в этом бинарнике
	ErrBackendUnavailable = errors.New("backend is not available in this build")
)
