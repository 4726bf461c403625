package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
)

// Config хранит параметры запуска движка.
type Config struct {
	// Seed - мастер-зерно симуляции. 0 означает случайное.
	Seed int64
	// Port HTTP/WebSocket сервера.
	Port string
	// TuningPath - путь к YAML с балансом; пусто = зашитые значения.
	TuningPath string
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed: time.Now().UnixNano(),
		Port: "8080",
	}
}

// tuningFile - формат YAML-файла баланса. Записи заменяют дефолтные
// целиком: частичное слияние полей не делается, чтобы файл оставался
// однозначным источником значений для перечисленных ключей.
type tuningFile struct {
	Weapons map[string]domain.WeaponSpec `yaml:"weapons"`
	Enemies map[string]domain.ClassSpec  `yaml:"enemies"`
}

// LoadTuning читает баланс: дефолты, поверх - записи из YAML (если путь задан).
func LoadTuning(path string) (*domain.Tuning, error) {
	tuning := domain.DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tuning file: %w", err)
	}
	defer f.Close()

	var file tuningFile
	if err := yaml.NewDecoder(f).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode tuning file: %w", err)
	}

	for name, spec := range file.Weapons {
		kind, ok := domain.ParseWeapon(name)
		if !ok {
			return nil, fmt.Errorf("unknown weapon %q in tuning file", name)
		}
		tuning.Weapons[kind] = spec
	}
	for name, spec := range file.Enemies {
		class, ok := domain.ParseClass(name)
		if !ok {
			return nil, fmt.Errorf("unknown enemy class %q in tuning file", name)
		}
		if spec.MinionClassName != "" {
			minion, ok := domain.ParseClass(spec.MinionClassName)
			if !ok {
				return nil, fmt.Errorf("unknown minion class %q in tuning file", spec.MinionClassName)
			}
			spec.MinionClass = minion
		}
		tuning.Classes[class] = spec
	}
	return tuning, nil
}
