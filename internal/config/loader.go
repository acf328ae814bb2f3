package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"activities-service/internal/model"
)

// Load собирает Config из трёх слоёв (по возрастанию приоритета):
//  1. значения по умолчанию (Default)
//  2. YAML-файл, если задан ACTIVITIES_CONFIG
//  3. переменные окружения с префиксом ACTIVITIES_
func Load(_ context.Context) (*Config, error) {
	base := Default()

	k := koanf.New(".")

	if path := os.Getenv("ACTIVITIES_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// ACTIVITIES_ADDR -> addr, ACTIVITIES_LOG_LEVEL -> log_level и т.д.
	envProvider := env.Provider("ACTIVITIES_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "activities_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.ShutdownTimeoutSec <= 0 {
		return nil, errors.New("shutdown_timeout_sec must be positive")
	}
	return &cfg, nil
}

// seedActivity описывает запись кружка в seed-файле.
type seedActivity struct {
	Name            string   `koanf:"name"`
	Description     string   `koanf:"description"`
	Schedule        string   `koanf:"schedule"`
	MaxParticipants int      `koanf:"max_participants"`
	Participants    []string `koanf:"participants"`
}

// LoadSeed читает каталог кружков из YAML-файла вида:
//
//	activities:
//	  - name: Chess Club
//	    description: ...
//	    schedule: ...
//	    max_participants: 12
//	    participants: [a@mergington.edu]
func LoadSeed(path string) ([]model.Activity, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load seed file: %w", err)
	}

	var seed []seedActivity
	if err := k.UnmarshalWithConf("activities", &seed, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal seed: %w", err)
	}
	if len(seed) == 0 {
		return nil, errors.New("seed file contains no activities")
	}

	activities := make([]model.Activity, 0, len(seed))
	for i, s := range seed {
		if s.Name == "" {
			return nil, fmt.Errorf("activities[%d]: name is required", i)
		}
		activities = append(activities, model.Activity{
			Name:            s.Name,
			Description:     s.Description,
			Schedule:        s.Schedule,
			MaxParticipants: s.MaxParticipants,
			Participants:    s.Participants,
		})
	}
	return activities, nil
}
