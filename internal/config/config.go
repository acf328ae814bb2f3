// Package config описывает конфигурацию процесса и её загрузку.
package config

// Config содержит конфигурацию сервиса кружков.
type Config struct {
	// Addr задаёт адрес HTTP-сервера, например ":8080".
	Addr string `koanf:"addr"`

	// LogLevel управляет уровнем логирования: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// ShutdownTimeoutSec ограничивает время graceful shutdown в секундах.
	ShutdownTimeoutSec int `koanf:"shutdown_timeout_sec"`

	// SeedFile указывает YAML-файл с каталогом кружков.
	// Пустое значение означает встроенный каталог по умолчанию.
	SeedFile string `koanf:"seed_file"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() *Config {
	return &Config{
		Addr:               ":8080",
		LogLevel:           "info",
		ShutdownTimeoutSec: 5,
	}
}
