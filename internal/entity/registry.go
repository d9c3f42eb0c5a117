// internal/entity/registry.go
package entity

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
)

// Registry владеет живыми коллекциями сущностей сессии: башнями, врагами и
// записями о выстрелах. Компоненты лежат в картах по ID, а отдельные срезы
// хранят порядок добавления: обходы ForEach* идут строго в порядке
// вставки, поэтому разрешение целей детерминировано и тестируемо.
type Registry struct {
	NextID types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Progresses  map[types.EntityID]*component.PathProgress
	Healths     map[types.EntityID]*component.Health
	Towers      map[types.EntityID]*component.Tower
	Hostiles    map[types.EntityID]*component.Hostile
	Projectiles map[types.EntityID]*component.Projectile

	towerOrder      []types.EntityID
	hostileOrder    []types.EntityID
	projectileOrder []types.EntityID
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset очищает все коллекции и счётчик ID. Используется при полном сбросе
// сессии.
func (r *Registry) Reset() {
	r.NextID = 1
	r.Positions = make(map[types.EntityID]*component.Position)
	r.Velocities = make(map[types.EntityID]*component.Velocity)
	r.Progresses = make(map[types.EntityID]*component.PathProgress)
	r.Healths = make(map[types.EntityID]*component.Health)
	r.Towers = make(map[types.EntityID]*component.Tower)
	r.Hostiles = make(map[types.EntityID]*component.Hostile)
	r.Projectiles = make(map[types.EntityID]*component.Projectile)
	r.towerOrder = r.towerOrder[:0]
	r.hostileOrder = r.hostileOrder[:0]
	r.projectileOrder = r.projectileOrder[:0]
}

func (r *Registry) newEntity() types.EntityID {
	id := r.NextID
	r.NextID++
	return id
}

// AddTower регистрирует башню с позицией и возвращает её ID.
func (r *Registry) AddTower(tower *component.Tower, pos component.Position) types.EntityID {
	id := r.newEntity()
	r.Towers[id] = tower
	r.Positions[id] = &pos
	r.towerOrder = append(r.towerOrder, id)
	return id
}

// AddHostile регистрирует врага со всеми его компонентами и возвращает ID.
func (r *Registry) AddHostile(hostile *component.Hostile, pos component.Position,
	vel component.Velocity, health component.Health) types.EntityID {
	id := r.newEntity()
	r.Hostiles[id] = hostile
	r.Positions[id] = &pos
	r.Velocities[id] = &vel
	r.Healths[id] = &health
	r.Progresses[id] = &component.PathProgress{SegmentIndex: 1}
	r.hostileOrder = append(r.hostileOrder, id)
	return id
}

// AddProjectile регистрирует запись о выстреле и возвращает её ID.
func (r *Registry) AddProjectile(proj *component.Projectile) types.EntityID {
	id := r.newEntity()
	r.Projectiles[id] = proj
	r.projectileOrder = append(r.projectileOrder, id)
	return id
}

// RemoveHostile удаляет врага и все его компоненты.
func (r *Registry) RemoveHostile(id types.EntityID) {
	if _, ok := r.Hostiles[id]; !ok {
		return
	}
	delete(r.Hostiles, id)
	delete(r.Positions, id)
	delete(r.Velocities, id)
	delete(r.Healths, id)
	delete(r.Progresses, id)
	r.hostileOrder = removeID(r.hostileOrder, id)
}

// ForEachTower обходит башни в порядке добавления. Возврат false из fn
// прерывает обход.
func (r *Registry) ForEachTower(fn func(id types.EntityID, tower *component.Tower) bool) {
	for _, id := range r.towerOrder {
		if tower, ok := r.Towers[id]; ok {
			if !fn(id, tower) {
				return
			}
		}
	}
}

// ForEachHostile обходит врагов в порядке добавления.
func (r *Registry) ForEachHostile(fn func(id types.EntityID, hostile *component.Hostile) bool) {
	// Копия среза: fn может удалять врагов во время обхода.
	order := make([]types.EntityID, len(r.hostileOrder))
	copy(order, r.hostileOrder)
	for _, id := range order {
		if hostile, ok := r.Hostiles[id]; ok {
			if !fn(id, hostile) {
				return
			}
		}
	}
}

// ForEachProjectile обходит записи о выстрелах в порядке добавления.
func (r *Registry) ForEachProjectile(fn func(id types.EntityID, proj *component.Projectile) bool) {
	for _, id := range r.projectileOrder {
		if proj, ok := r.Projectiles[id]; ok {
			if !fn(id, proj) {
				return
			}
		}
	}
}

// Prune удаляет записи о выстрелах, чьё время жизни истекло к моменту now.
func (r *Registry) Prune(now float64) {
	kept := r.projectileOrder[:0]
	for _, id := range r.projectileOrder {
		proj := r.Projectiles[id]
		if proj != nil && proj.ExpiresAt > now {
			kept = append(kept, id)
			continue
		}
		delete(r.Projectiles, id)
	}
	r.projectileOrder = kept
}

// TowerCount возвращает число установленных башен.
func (r *Registry) TowerCount() int {
	return len(r.towerOrder)
}

// HostileCount возвращает число живых врагов на поле.
func (r *Registry) HostileCount() int {
	return len(r.hostileOrder)
}

// ProjectileCount возвращает число активных записей о выстрелах.
func (r *Registry) ProjectileCount() int {
	return len(r.projectileOrder)
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
