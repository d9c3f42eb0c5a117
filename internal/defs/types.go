// internal/defs/types.go
package defs

// TowerType — закрытое перечисление типов башен. Набор фиксирован на этапе
// компиляции; новые типы добавляются в библиотеку, а не через наследование.
type TowerType string

const (
	TowerArrow  TowerType = "TOWER_ARROW"
	TowerCannon TowerType = "TOWER_CANNON"
	TowerFrost  TowerType = "TOWER_FROST"
	TowerSentry TowerType = "TOWER_SENTRY"
)

// HostileType — закрытое перечисление типов врагов.
type HostileType string

const (
	HostileRunner HostileType = "HOSTILE_RUNNER"
	HostileBrute  HostileType = "HOSTILE_BRUTE"
	HostileSwarm  HostileType = "HOSTILE_SWARM"
	HostileBoss   HostileType = "HOSTILE_BOSS"
)
