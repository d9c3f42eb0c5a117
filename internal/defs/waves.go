// internal/defs/waves.go
package defs

// SpawnEntry описывает одно запланированное появление врага: тип и задержка
// от начала волны в секундах.
type SpawnEntry struct {
	HostileID HostileType `yaml:"hostile"`
	Delay     float64     `yaml:"delay"`
}

// WaveDefinition описывает одну волну — упорядоченный список появлений.
// Записи должны идти по неубыванию задержки.
type WaveDefinition struct {
	Entries []SpawnEntry `yaml:"entries"`
}

// LevelDefinition описывает уровень: имя и последовательность волн.
type LevelDefinition struct {
	Name  string           `yaml:"name"`
	Waves []WaveDefinition `yaml:"waves"`
}

// DefaultLevel — встроенный уровень, используется когда внешний файл уровня
// не задан.
var DefaultLevel = LevelDefinition{
	Name: "Backyard Siege",
	Waves: []WaveDefinition{
		{Entries: []SpawnEntry{
			{HostileID: HostileRunner, Delay: 0},
			{HostileID: HostileRunner, Delay: 1.5},
			{HostileID: HostileRunner, Delay: 3.0},
			{HostileID: HostileRunner, Delay: 4.5},
		}},
		{Entries: []SpawnEntry{
			{HostileID: HostileRunner, Delay: 0},
			{HostileID: HostileSwarm, Delay: 1.0},
			{HostileID: HostileSwarm, Delay: 1.6},
			{HostileID: HostileSwarm, Delay: 2.2},
			{HostileID: HostileBrute, Delay: 5.0},
		}},
		{Entries: []SpawnEntry{
			{HostileID: HostileBrute, Delay: 0},
			{HostileID: HostileBrute, Delay: 2.0},
			{HostileID: HostileSwarm, Delay: 3.0},
			{HostileID: HostileSwarm, Delay: 3.5},
			{HostileID: HostileSwarm, Delay: 4.0},
			{HostileID: HostileBoss, Delay: 8.0},
		}},
	},
}
