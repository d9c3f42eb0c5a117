// internal/defs/towers.go
package defs

// TowerDefinition содержит все статические параметры одного типа башни.
type TowerDefinition struct {
	ID             TowerType `yaml:"id"`
	Name           string    `yaml:"name"`
	Cost           int       `yaml:"cost"`
	Range          float64   `yaml:"range"`
	Damage         int       `yaml:"damage"`
	AttackInterval float64   `yaml:"attack_interval"` // секунды между выстрелами
	ProjectileTag  string    `yaml:"projectile_tag"`  // визуальная метка для слоя отрисовки
}

// TowerLibrary — библиотека определений башен по их ID. Заполняется
// встроенными значениями и может быть перекрыта загрузчиком.
var TowerLibrary = map[TowerType]TowerDefinition{
	TowerArrow: {
		ID:             TowerArrow,
		Name:           "Arrow Tower",
		Cost:           50,
		Range:          120,
		Damage:         10,
		AttackInterval: 0.5,
		ProjectileTag:  "arrow",
	},
	TowerCannon: {
		ID:             TowerCannon,
		Name:           "Cannon Tower",
		Cost:           120,
		Range:          90,
		Damage:         35,
		AttackInterval: 1.4,
		ProjectileTag:  "cannonball",
	},
	TowerFrost: {
		ID:             TowerFrost,
		Name:           "Frost Tower",
		Cost:           80,
		Range:          100,
		Damage:         6,
		AttackInterval: 0.4,
		ProjectileTag:  "shard",
	},
	TowerSentry: {
		ID:             TowerSentry,
		Name:           "Sentry Tower",
		Cost:           200,
		Range:          180,
		Damage:         60,
		AttackInterval: 2.0,
		ProjectileTag:  "bolt",
	},
}
