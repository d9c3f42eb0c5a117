// internal/app/errors.go
package app

import "errors"

// Ошибки команд. Команда, завершившаяся ошибкой, не изменяет состояние
// симуляции; вызывающая сторона различает причины через errors.Is.
var (
	// ErrInsufficientFunds — не хватает мотивации на стоимость башни.
	ErrInsufficientFunds = errors.New("app: insufficient motivation")

	// ErrOutOfZone — точка установки вне зоны строительства.
	ErrOutOfZone = errors.New("app: position outside placement zone")

	// ErrTooClose — не выдержано минимальное расстояние до существующей башни.
	ErrTooClose = errors.New("app: too close to an existing tower")

	// ErrInvalidState — команда не допустима в текущем состоянии сессии.
	ErrInvalidState = errors.New("app: command not valid in current state")

	// ErrUnknownTowerType — тип башни отсутствует в библиотеке.
	ErrUnknownTowerType = errors.New("app: unknown tower type")
)
