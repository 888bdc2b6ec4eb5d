package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // "memory" or a SQLite file path
	}
	Maintenance struct {
		PurgeSchedule string `mapstructure:"purge_schedule"` // cron spec for the nightly log purge
		RetentionDays int    `mapstructure:"retention_days"` // how long soft-deleted logs are kept
	}
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from config.yaml and environment variables.
// Environment variables use the FLIGHTFUEL_ prefix with underscores, e.g.
// FLIGHTFUEL_SERVER_PORT.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("FLIGHTFUEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "memory")
	viper.SetDefault("maintenance.purge_schedule", "0 3 * * *")
	viper.SetDefault("maintenance.retention_days", 30)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] No config file found, using defaults and environment variables.")
		} else {
			log.Fatalf("FATAL: [Config] Failed to read config file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal config: %v", err)
	}

	log.Printf("INFO: [Config] Configuration loaded (port=%s, dsn=%s).", AppConfig.Server.Port, AppConfig.Database.DSN)
}
