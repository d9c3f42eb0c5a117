// internal/event/types.go
package event

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

const (
	HostileEscaped   EventType = "HostileEscaped"   // враг дошёл до конца пути
	HostileDestroyed EventType = "HostileDestroyed" // враг уничтожен башнями
	WaveCleared      EventType = "WaveCleared"      // все враги волны выпущены и сняты с поля
	TowerPlaced      EventType = "TowerPlaced"      // башня установлена
	Defeat           EventType = "Defeat"           // здоровье игрока исчерпано
)

// HostilePayload — полезная нагрузка событий о врагах.
type HostilePayload struct {
	ID    types.EntityID
	DefID defs.HostileType
}

// WaveClearedPayload — полезная нагрузка события зачистки волны.
type WaveClearedPayload struct {
	Number int // номер зачищенной волны
}
