// internal/component/session.go
package component

// Status — состояние игровой сессии.
type Status int

const (
	StatusStart Status = iota
	StatusPlaying
	StatusWaveTransition
	StatusGameOver
	StatusVictory
)

// String возвращает имя состояния для логов и снимков.
func (s Status) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusWaveTransition:
		return "WAVE_TRANSITION"
	case StatusGameOver:
		return "GAME_OVER"
	case StatusVictory:
		return "VICTORY"
	default:
		return "UNKNOWN"
	}
}

// Terminal сообщает, является ли состояние конечным. Из конечного состояния
// выход возможен только через полный сброс сессии.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusVictory
}

// Session — ресурсы и положение сессии: здоровье игрока (focus), валюта
// (motivation), номер текущей волны и статус.
type Session struct {
	Focus      int
	Motivation int
	WaveIndex  int // номер активной волны, нумерация с 1; 0 — волны ещё не было
	Status     Status
}
