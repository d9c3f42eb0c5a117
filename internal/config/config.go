// internal/config/config.go
package config

const (
	// Начальные ресурсы сессии.
	StartingFocus      = 10
	StartingMotivation = 150

	// Бонус мотивации за зачистку волны.
	WaveClearBonus = 25

	// MinTickInterval — минимальный шаг симуляции в секундах. Вызовы Tick
	// с меньшим накопленным dt объединяются в один шаг.
	MinTickInterval = 1.0 / 120.0

	// MaxDeltaTime — верхняя граница одного шага симуляции. Накопленное
	// время сверх неё дробится на подшаги и не теряется.
	MaxDeltaTime = 0.25

	// TowerClearance — минимальное расстояние между центрами башен.
	TowerClearance = 28.0

	// ProjectileLifetime — время жизни визуальной записи о выстреле, секунды.
	ProjectileLifetime = 0.35
)
