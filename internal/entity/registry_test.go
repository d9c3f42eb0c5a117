// internal/entity/registry_test.go
package entity

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"

	"github.com/stretchr/testify/require"
)

func addHostile(r *Registry) types.EntityID {
	return r.AddHostile(
		&component.Hostile{DefID: defs.HostileRunner},
		component.Position{},
		component.Velocity{Speed: 40},
		component.Health{Value: 100, Max: 100},
	)
}

func TestRegistryInsertionOrder(t *testing.T) {
	r := NewRegistry()
	first := addHostile(r)
	second := addHostile(r)
	third := addHostile(r)

	var visited []types.EntityID
	r.ForEachHostile(func(id types.EntityID, _ *component.Hostile) bool {
		visited = append(visited, id)
		return true
	})
	require.Equal(t, []types.EntityID{first, second, third}, visited)

	// После удаления из середины порядок оставшихся сохраняется.
	r.RemoveHostile(second)
	visited = visited[:0]
	r.ForEachHostile(func(id types.EntityID, _ *component.Hostile) bool {
		visited = append(visited, id)
		return true
	})
	require.Equal(t, []types.EntityID{first, third}, visited)
	require.Equal(t, 2, r.HostileCount())
}

func TestRegistryRemoveHostileDropsComponents(t *testing.T) {
	r := NewRegistry()
	id := addHostile(r)

	r.RemoveHostile(id)
	require.Nil(t, r.Positions[id])
	require.Nil(t, r.Velocities[id])
	require.Nil(t, r.Healths[id])
	require.Nil(t, r.Progresses[id])
	require.Nil(t, r.Hostiles[id])

	// Повторное удаление безопасно.
	r.RemoveHostile(id)
	require.Equal(t, 0, r.HostileCount())
}

func TestRegistryPruneProjectiles(t *testing.T) {
	r := NewRegistry()
	r.AddProjectile(&component.Projectile{ExpiresAt: 1.0})
	keep := r.AddProjectile(&component.Projectile{ExpiresAt: 3.0})
	require.Equal(t, 2, r.ProjectileCount())

	r.Prune(2.0)
	require.Equal(t, 1, r.ProjectileCount())
	require.NotNil(t, r.Projectiles[keep])
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry()
	addHostile(r)
	r.AddTower(&component.Tower{DefID: defs.TowerArrow}, component.Position{})
	r.AddProjectile(&component.Projectile{ExpiresAt: 10})

	r.Reset()
	require.Equal(t, 0, r.HostileCount())
	require.Equal(t, 0, r.TowerCount())
	require.Equal(t, 0, r.ProjectileCount())
	require.Equal(t, types.EntityID(1), r.NextID)
}
