// internal/component/hostile.go
package component

import "go-tower-sim/internal/defs"

// Hostile представляет вражескую сущность.
type Hostile struct {
	DefID      defs.HostileType // ID из библиотеки врагов
	ReachedEnd bool             // достиг ли враг конца пути в этом тике
}

// Health — компонент здоровья. Value не опускается ниже нуля: урон
// применяется через Damage, который выполняет отсечение.
type Health struct {
	Value int
	Max   int
}

// Damage уменьшает здоровье на amount с отсечением в нуле и сообщает,
// стало ли здоровье нулевым.
func (h *Health) Damage(amount int) bool {
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
	return h.Value == 0
}

// Fraction возвращает долю оставшегося здоровья в диапазоне [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Value) / float64(h.Max)
}
