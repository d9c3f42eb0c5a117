// internal/component/projectile.go
package component

import "go-tower-sim/pkg/geom"

// Projectile — запись о выстреле для слоя отрисовки. Игрового эффекта не
// несёт: урон применяется в момент выстрела, запись живёт фиксированное
// время и удаляется.
type Projectile struct {
	Origin    geom.Point // позиция башни в момент выстрела
	Target    geom.Point // позиция цели в момент выстрела
	Tag       string     // визуальная метка из определения башни
	ExpiresAt float64    // игровое время, после которого запись устаревает
}
