// internal/system/economy.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"

	"go.uber.org/zap"
)

// EconomySystem ведёт ресурсы сессии: здоровье игрока (focus) и валюту
// (motivation). Оба значения отсекаются в нуле в точке изменения, поэтому
// отрицательные состояния недостижимы по построению.
//
// Система подписана на события боя: уничтожение врага приносит награду,
// прорыв врага снимает единицу здоровья, зачистка волны даёт бонус.
type EconomySystem struct {
	session    *component.Session
	dispatcher *event.Dispatcher
	log        *zap.Logger
}

// NewEconomySystem создаёт трекер ресурсов и подписывает его на события.
func NewEconomySystem(session *component.Session, dispatcher *event.Dispatcher,
	log *zap.Logger) *EconomySystem {
	es := &EconomySystem{
		session:    session,
		dispatcher: dispatcher,
		log:        log,
	}
	dispatcher.Subscribe(event.HostileDestroyed, es)
	dispatcher.Subscribe(event.HostileEscaped, es)
	dispatcher.Subscribe(event.WaveCleared, es)
	return es
}

// TrySpend списывает amount мотивации, если её достаточно. Возвращает false
// без изменения состояния, если средств не хватает.
func (es *EconomySystem) TrySpend(amount int) bool {
	if es.session.Motivation < amount {
		return false
	}
	es.session.Motivation -= amount
	return true
}

// Reward безусловно начисляет мотивацию.
func (es *EconomySystem) Reward(amount int) {
	es.session.Motivation += amount
}

// ApplyEscapePenalty снимает единицу здоровья с отсечением в нуле. При
// достижении нуля отправляет сигнал поражения машине состояний.
func (es *EconomySystem) ApplyEscapePenalty() {
	if es.session.Focus == 0 {
		return
	}
	es.session.Focus--
	if es.session.Focus == 0 {
		es.dispatcher.Dispatch(event.Event{Type: event.Defeat})
	}
}

// OnEvent реализует интерфейс event.Listener.
func (es *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.HostileDestroyed:
		payload, ok := e.Data.(event.HostilePayload)
		if !ok {
			return
		}
		def, ok := defs.HostileLibrary[payload.DefID]
		if !ok {
			es.log.Error("economy: unknown hostile definition", zap.String("def", string(payload.DefID)))
			return
		}
		es.Reward(def.Reward)
	case event.HostileEscaped:
		es.ApplyEscapePenalty()
	case event.WaveCleared:
		es.Reward(config.WaveClearBonus)
	}
}
