// internal/system/movement.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"
)

// MovementSystem продвигает врагов вдоль пути.
//
// Политика перехода через границу сегмента: остаток хода, выходящий за конец
// сегмента, отбрасывается, враг встаёт в начало следующего сегмента. На
// стыках возникает небольшая, зависящая от скорости, потеря дистанции; тесты
// закрепляют именно это поведение.
type MovementSystem struct {
	registry *entity.Registry
	path     *geom.Path
}

// NewMovementSystem создаёт систему движения для данного пути.
func NewMovementSystem(registry *entity.Registry, path *geom.Path) *MovementSystem {
	return &MovementSystem{registry: registry, path: path}
}

// Update продвигает каждого врага на speed*dt вдоль его текущего сегмента.
// Враг, прошедший последний сегмент, помечается как достигший конца пути;
// удаление и штраф выполняются на этапе очистки тика.
func (s *MovementSystem) Update(dt float64) {
	s.registry.ForEachHostile(func(id types.EntityID, hostile *component.Hostile) bool {
		if hostile.ReachedEnd {
			return true
		}

		progress := s.registry.Progresses[id]
		vel := s.registry.Velocities[id]
		pos := s.registry.Positions[id]
		if progress == nil || vel == nil || pos == nil {
			return true
		}

		from, to, length := s.path.Segment(progress.SegmentIndex)
		progress.DistanceInto += vel.Speed * dt

		if progress.DistanceInto >= length {
			// Переход на следующий сегмент, остаток хода отбрасывается.
			progress.SegmentIndex++
			progress.DistanceInto = 0

			if progress.SegmentIndex > s.path.SegmentCount() {
				hostile.ReachedEnd = true
				pos.Point = s.path.End()
				return true
			}

			start, _, _ := s.path.Segment(progress.SegmentIndex)
			pos.Point = start
			return true
		}

		pos.Point = from.Lerp(to, progress.DistanceInto/length)
		return true
	})
}
