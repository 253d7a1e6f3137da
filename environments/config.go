package environments

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Opener   OpenerConfig
	Locale   LocaleConfig
	History  HistoryConfig
	Scan     ScanConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level string
}

type StorageConfig struct {
	// Backend is one of "valkey", "mysql" or "memory".
	Backend string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

type OpenerConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type LocaleConfig struct {
	URL     string
	Timeout time.Duration
}

type HistoryConfig struct {
	MaxSize       int
	PreviewLength int
}

type ScanConfig struct {
	Cooldown time.Duration
}

type AuthConfig struct {
	APIKey string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: GetEnv("SERVER_PORT", "8080"),
		},
		Log: LogConfig{
			Level: GetEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Backend: GetEnv("STORAGE_BACKEND", "valkey"),
		},
		Database: DatabaseConfig{
			Host:     GetEnv("DB_HOST", "localhost"),
			Port:     GetEnv("DB_PORT", "3306"),
			User:     GetEnv("DB_USER", "direct"),
			Password: GetEnv("DB_PASSWORD", "direct123"),
			DBName:   GetEnv("DB_NAME", "direct_messages"),
		},
		Redis: RedisConfig{
			Host:      GetEnv("REDIS_HOST", "localhost"),
			Port:      GetEnv("REDIS_PORT", "6379"),
			Password:  GetEnv("REDIS_PASSWORD", ""),
			DB:        GetEnvAsInt("REDIS_DB", 0),
			KeyPrefix: GetEnv("REDIS_KEY_PREFIX", "direct:"),
		},
		Opener: OpenerConfig{
			URL:     GetEnv("OPENER_URL", "http://localhost:9090"),
			APIKey:  GetEnv("OPENER_API_KEY", ""),
			Timeout: time.Duration(GetEnvAsInt("OPENER_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Locale: LocaleConfig{
			URL:     GetEnv("LOCALE_URL", "https://ipapi.co/country/"),
			Timeout: GetEnvAsDuration("LOCALE_TIMEOUT", 3*time.Second),
		},
		History: HistoryConfig{
			MaxSize:       GetEnvAsInt("HISTORY_MAX_SIZE", 5),
			PreviewLength: GetEnvAsInt("HISTORY_PREVIEW_LENGTH", 30),
		},
		Scan: ScanConfig{
			Cooldown: GetEnvAsDuration("SCAN_COOLDOWN", 2*time.Second),
		},
		Auth: AuthConfig{
			APIKey: GetEnv("API_KEY", ""),
		},
	}
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
