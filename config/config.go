package config

import (
	"log"

	"github.com/spf13/viper"
)

// HourRange is a recurring window of local hours, applied every open day.
type HourRange struct {
	StartHour int `mapstructure:"START_HOUR"`
	EndHour   int `mapstructure:"END_HOUR"`
}

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration. Leaving REDIS_ADDR empty disables the
	// availability cache and the retention worker.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Availability cache TTL in seconds.
	AvailabilityCacheTTL int `mapstructure:"AVAILABILITY_CACHE_TTL"`

	// Retention sweep horizon in days; 0 disables the worker.
	RetentionDays int `mapstructure:"RETENTION_DAYS"`

	// Scheduling policy. Loaded once at startup, never reloaded.
	OperationStartHour     int         `mapstructure:"OPERATION_START_HOUR"`
	OperationEndHour       int         `mapstructure:"OPERATION_END_HOUR"`
	SlotDurationMinutes    int         `mapstructure:"SLOT_DURATION_MINUTES"`
	MaxAppointmentSlotSpan int         `mapstructure:"MAX_APPOINTMENT_SLOT_SPAN"`
	Timezone               string      `mapstructure:"TIMEZONE"`
	BlockedDates           []string    `mapstructure:"BLOCKED_DATES"`
	BlockedTimes           []HourRange `mapstructure:"BLOCKED_TIMES"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("AVAILABILITY_CACHE_TTL", 60)
	viper.SetDefault("RETENTION_DAYS", 0)
	viper.SetDefault("OPERATION_START_HOUR", 9)
	viper.SetDefault("OPERATION_END_HOUR", 17)
	viper.SetDefault("SLOT_DURATION_MINUTES", 30)
	viper.SetDefault("MAX_APPOINTMENT_SLOT_SPAN", 4)
	viper.SetDefault("TIMEZONE", "UTC")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
