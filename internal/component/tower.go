// internal/component/tower.go
package component

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

// Tower представляет установленную башню. Башни не удаляются до сброса
// сессии, продажа не поддерживается.
type Tower struct {
	DefID          defs.TowerType // ID из библиотеки башен
	LastAttackTime float64        // игровое время последнего выстрела
	TargetID       types.EntityID // текущая цель, NoEntity если цели нет
}
