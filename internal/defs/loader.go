// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile — формат YAML-файла с каталогами. Любая из секций может
// отсутствовать; присутствующие записи перекрывают встроенные.
type catalogFile struct {
	Towers   []TowerDefinition   `yaml:"towers"`
	Hostiles []HostileDefinition `yaml:"hostiles"`
}

// LoadCatalog читает YAML-файл с определениями башен и врагов и вносит их
// в библиотеки. Встроенные записи с совпадающими ID заменяются.
func LoadCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("defs: read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("defs: unmarshal catalog: %w", err)
	}

	for _, def := range file.Towers {
		if err := validateTower(def); err != nil {
			return err
		}
		TowerLibrary[def.ID] = def
	}
	for _, def := range file.Hostiles {
		if err := validateHostile(def); err != nil {
			return err
		}
		HostileLibrary[def.ID] = def
	}
	return nil
}

// LoadLevel читает YAML-файл уровня и проверяет, что все волны ссылаются на
// известных врагов.
func LoadLevel(path string) (LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("defs: read level: %w", err)
	}

	var level LevelDefinition
	if err := yaml.Unmarshal(data, &level); err != nil {
		return LevelDefinition{}, fmt.Errorf("defs: unmarshal level: %w", err)
	}
	if err := ValidateLevel(level); err != nil {
		return LevelDefinition{}, err
	}
	return level, nil
}

// ValidateLevel проверяет согласованность определения уровня с библиотекой
// врагов и монотонность задержек внутри волны.
func ValidateLevel(level LevelDefinition) error {
	if len(level.Waves) == 0 {
		return fmt.Errorf("defs: level %q has no waves", level.Name)
	}
	for wi, wave := range level.Waves {
		if len(wave.Entries) == 0 {
			return fmt.Errorf("defs: level %q wave %d is empty", level.Name, wi+1)
		}
		prev := 0.0
		for si, entry := range wave.Entries {
			if _, ok := HostileLibrary[entry.HostileID]; !ok {
				return fmt.Errorf("defs: level %q wave %d spawn %d references unknown hostile %q",
					level.Name, wi+1, si+1, entry.HostileID)
			}
			if entry.Delay < prev {
				return fmt.Errorf("defs: level %q wave %d spawn %d is out of order", level.Name, wi+1, si+1)
			}
			prev = entry.Delay
		}
	}
	return nil
}

func validateTower(def TowerDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("defs: tower definition without id")
	}
	if def.Cost < 0 || def.Damage < 0 || def.Range <= 0 || def.AttackInterval <= 0 {
		return fmt.Errorf("defs: tower %q has invalid stats", def.ID)
	}
	return nil
}

func validateHostile(def HostileDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("defs: hostile definition without id")
	}
	if def.MaxHealth <= 0 || def.Speed <= 0 || def.Reward < 0 {
		return fmt.Errorf("defs: hostile %q has invalid stats", def.ID)
	}
	return nil
}
