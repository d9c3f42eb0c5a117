// internal/types/types.go
package types

// EntityID — идентификатор сущности внутри одной сессии.
// Выдаётся последовательно, ноль означает «нет сущности».
type EntityID uint64

// NoEntity — нулевой идентификатор, используется как «цель отсутствует».
const NoEntity EntityID = 0
