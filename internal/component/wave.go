// internal/component/wave.go
package component

import "go-tower-sim/internal/defs"

// Wave — состояние активной волны: расписание появлений и позиция в нём.
type Wave struct {
	Number         int              // номер волны, нумерация с 1
	Entries        []defs.SpawnEntry // расписание появлений, отсортировано по задержке
	StartTime      float64          // игровое время начала волны
	NextSpawnIndex int              // индекс следующего появления в Entries
}

// SpawnsDone сообщает, выпущены ли все запланированные враги волны.
func (w *Wave) SpawnsDone() bool {
	return w.NextSpawnIndex >= len(w.Entries)
}
