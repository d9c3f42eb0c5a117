// internal/defs/hostiles.go
package defs

// HostileDefinition содержит все статические параметры одного типа врага.
type HostileDefinition struct {
	ID        HostileType `yaml:"id"`
	Name      string      `yaml:"name"`
	MaxHealth int         `yaml:"max_health"`
	Speed     float64     `yaml:"speed"`  // единиц в секунду вдоль пути
	Reward    int         `yaml:"reward"` // мотивация за уничтожение
}

// HostileLibrary — библиотека определений врагов по их ID.
var HostileLibrary = map[HostileType]HostileDefinition{
	HostileRunner: {
		ID:        HostileRunner,
		Name:      "Runner",
		MaxHealth: 100,
		Speed:     40,
		Reward:    10,
	},
	HostileBrute: {
		ID:        HostileBrute,
		Name:      "Brute",
		MaxHealth: 400,
		Speed:     22,
		Reward:    35,
	},
	HostileSwarm: {
		ID:        HostileSwarm,
		Name:      "Swarmling",
		MaxHealth: 40,
		Speed:     65,
		Reward:    4,
	},
	HostileBoss: {
		ID:        HostileBoss,
		Name:      "Siege Boss",
		MaxHealth: 2500,
		Speed:     15,
		Reward:    250,
	},
}
