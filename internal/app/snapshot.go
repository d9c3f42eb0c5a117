// internal/app/snapshot.go
package app

import (
	"encoding/binary"
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"

	"github.com/cespare/xxhash/v2"
)

// Снимок состояния для слоя отрисовки: читается раз в тик, не содержит
// ссылок на живые структуры симуляции и потому безопасен для удержания
// между тиками.

// TowerView — башня в снимке.
type TowerView struct {
	ID       types.EntityID
	Type     defs.TowerType
	Position geom.Point
}

// HostileView — враг в снимке. HealthFraction лежит в [0, 1].
type HostileView struct {
	ID             types.EntityID
	Type           defs.HostileType
	Position       geom.Point
	HealthFraction float64
}

// ProjectileView — запись о выстреле в снимке. Remaining — оставшееся время
// жизни в секундах.
type ProjectileView struct {
	ID        types.EntityID
	Origin    geom.Point
	Target    geom.Point
	Tag       string
	Remaining float64
}

// SessionView — ресурсы и положение сессии в снимке.
type SessionView struct {
	Focus      int
	Motivation int
	WaveIndex  int
	Status     component.Status
}

// Snapshot — полный неизменяемый снимок симуляции на конец тика.
type Snapshot struct {
	SessionID   string
	Tick        uint64
	Time        float64
	Towers      []TowerView
	Hostiles    []HostileView
	Projectiles []ProjectileView
	Session     SessionView
}

// Snapshot собирает снимок текущего состояния. Порядок элементов — порядок
// добавления в реестр, поэтому снимок детерминирован вместе с симуляцией.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: g.SessionID.String(),
		Tick:      g.tickCount,
		Time:      g.gameTime,
		Session: SessionView{
			Focus:      g.session.Focus,
			Motivation: g.session.Motivation,
			WaveIndex:  g.session.WaveIndex,
			Status:     g.session.Status,
		},
	}

	g.Registry.ForEachTower(func(id types.EntityID, tower *component.Tower) bool {
		pos := g.Registry.Positions[id]
		snap.Towers = append(snap.Towers, TowerView{
			ID:       id,
			Type:     tower.DefID,
			Position: pos.Point,
		})
		return true
	})

	g.Registry.ForEachHostile(func(id types.EntityID, hostile *component.Hostile) bool {
		pos := g.Registry.Positions[id]
		health := g.Registry.Healths[id]
		snap.Hostiles = append(snap.Hostiles, HostileView{
			ID:             id,
			Type:           hostile.DefID,
			Position:       pos.Point,
			HealthFraction: health.Fraction(),
		})
		return true
	})

	g.Registry.ForEachProjectile(func(id types.EntityID, proj *component.Projectile) bool {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:        id,
			Origin:    proj.Origin,
			Target:    proj.Target,
			Tag:       proj.Tag,
			Remaining: proj.ExpiresAt - g.gameTime,
		})
		return true
	})

	return snap
}

// Hash возвращает xxhash-дайджест снимка без учёта идентификатора сессии.
// Два прогона с одинаковым путём, уровнем и последовательностью dt дают
// одинаковые дайджесты на каждом тике — этим проверяется детерминизм
// воспроизведения.
func (s Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	writeF64 := func(v float64) {
		writeU64(math.Float64bits(v))
	}
	writeStr := func(v string) {
		writeU64(uint64(len(v)))
		_, _ = d.WriteString(v)
	}

	writeU64(s.Tick)
	writeF64(s.Time)
	writeU64(uint64(s.Session.Focus))
	writeU64(uint64(s.Session.Motivation))
	writeU64(uint64(s.Session.WaveIndex))
	writeU64(uint64(s.Session.Status))

	writeU64(uint64(len(s.Towers)))
	for _, t := range s.Towers {
		writeU64(uint64(t.ID))
		writeStr(string(t.Type))
		writeF64(t.Position.X)
		writeF64(t.Position.Y)
	}

	writeU64(uint64(len(s.Hostiles)))
	for _, h := range s.Hostiles {
		writeU64(uint64(h.ID))
		writeStr(string(h.Type))
		writeF64(h.Position.X)
		writeF64(h.Position.Y)
		writeF64(h.HealthFraction)
	}

	writeU64(uint64(len(s.Projectiles)))
	for _, p := range s.Projectiles {
		writeU64(uint64(p.ID))
		writeStr(p.Tag)
		writeF64(p.Origin.X)
		writeF64(p.Origin.Y)
		writeF64(p.Target.X)
		writeF64(p.Target.Y)
		writeF64(p.Remaining)
	}

	return d.Sum64()
}
