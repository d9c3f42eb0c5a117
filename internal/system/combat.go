// internal/system/combat.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"

	"go.uber.org/zap"
)

// CombatSystem управляет захватом целей и атакой башен.
//
// Выбор цели: первый враг в радиусе при обходе реестра в порядке добавления,
// а не ближайший. При стабильном порядке обхода выбор детерминирован, и
// тесты закрепляют именно это поведение.
type CombatSystem struct {
	registry *entity.Registry
	log      *zap.Logger
}

// NewCombatSystem создаёт боевую систему.
func NewCombatSystem(registry *entity.Registry, log *zap.Logger) *CombatSystem {
	return &CombatSystem{registry: registry, log: log}
}

// Update выполняет по одному боевому действию на башню: проверяет текущую
// цель, при необходимости захватывает новую и стреляет, если перезарядка
// завершена. Урон применяется немедленно; запись о выстреле создаётся только
// для слоя отрисовки. Башни разрешаются в порядке добавления, поэтому враг,
// убитый в этом же тике более ранней башней, для последующих уже мёртв.
func (s *CombatSystem) Update(now float64) {
	s.registry.ForEachTower(func(towerID types.EntityID, tower *component.Tower) bool {
		def, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			s.log.Error("combat: unknown tower definition", zap.String("def", string(tower.DefID)))
			return true
		}

		towerPos := s.registry.Positions[towerID]
		if towerPos == nil {
			return true
		}

		if !s.targetValid(tower.TargetID, towerPos.Point, def.Range) {
			tower.TargetID = s.acquireTarget(towerPos.Point, def.Range)
		}
		if tower.TargetID == types.NoEntity {
			return true
		}

		if now-tower.LastAttackTime < def.AttackInterval {
			return true
		}

		targetPos := s.registry.Positions[tower.TargetID]
		health := s.registry.Healths[tower.TargetID]
		if targetPos == nil || health == nil {
			tower.TargetID = types.NoEntity
			return true
		}

		health.Damage(def.Damage)
		tower.LastAttackTime = now
		s.registry.AddProjectile(&component.Projectile{
			Origin:    towerPos.Point,
			Target:    targetPos.Point,
			Tag:       def.ProjectileTag,
			ExpiresAt: now + config.ProjectileLifetime,
		})
		return true
	})
}

// targetValid проверяет, что цель существует, жива и остаётся в радиусе.
func (s *CombatSystem) targetValid(id types.EntityID, from geom.Point, rng float64) bool {
	if id == types.NoEntity {
		return false
	}
	hostile := s.registry.Hostiles[id]
	health := s.registry.Healths[id]
	pos := s.registry.Positions[id]
	if hostile == nil || health == nil || pos == nil {
		return false
	}
	if hostile.ReachedEnd || health.Value <= 0 {
		return false
	}
	return from.Dist(pos.Point) <= rng
}

// acquireTarget возвращает первого живого врага в радиусе в порядке
// добавления в реестр, либо NoEntity.
func (s *CombatSystem) acquireTarget(from geom.Point, rng float64) types.EntityID {
	target := types.NoEntity
	s.registry.ForEachHostile(func(id types.EntityID, hostile *component.Hostile) bool {
		if hostile.ReachedEnd {
			return true
		}
		health := s.registry.Healths[id]
		pos := s.registry.Positions[id]
		if health == nil || pos == nil || health.Value <= 0 {
			return true
		}
		if from.Dist(pos.Point) <= rng {
			target = id
			return false
		}
		return true
	})
	return target
}
