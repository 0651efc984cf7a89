package config

import (
	"os"
	"strconv"
)

type Config struct {
	App        AppConfig
	Logger     LoggerConfig
	Storage    StorageConfig
	Redis      RedisConfig
	Simulation SimulationConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StorageConfig struct {
	// Backend selects the snapshot store: "sqlite", "redis" or "memory".
	Backend    string
	SQLitePath string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// SimulationConfig holds the artificial latencies standing in for network
// round-trips. Tests set them to zero.
type SimulationConfig struct {
	AuthDelayMs  int
	OrderDelayMs int
}

func LoadEnv() *Config {
	// Basic config loading
	// In a real scenario, use structured config loader like viper or koanf
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORE_BACKEND", "sqlite"),
			SQLitePath: getEnv("STORE_SQLITE_PATH", "storefront.db"),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "storefront"),
		},
		Simulation: SimulationConfig{
			AuthDelayMs:  getEnvInt("SIM_AUTH_DELAY_MS", 1000),
			OrderDelayMs: getEnvInt("SIM_ORDER_DELAY_MS", 2000),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
