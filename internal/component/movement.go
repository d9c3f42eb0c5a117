// internal/component/movement.go
package component

import "go-tower-sim/pkg/geom"

// Position — компонент позиции.
type Position struct {
	Point geom.Point
}

// Velocity — компонент скорости движения вдоль пути.
type Velocity struct {
	Speed float64 // единиц в секунду
}

// PathProgress — продвижение врага по пути: номер текущего сегмента
// (нумерация с 1) и пройденное расстояние внутри него.
type PathProgress struct {
	SegmentIndex int
	DistanceInto float64
}
