package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration. Each concern gets its own logical DB.
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	RedisPassword       string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB        int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB         int    `mapstructure:"REDIS_AUTH_DB"`
	RedisSessionDB      int    `mapstructure:"REDIS_SESSION_DB"`
	RedisResetTokenDB   int    `mapstructure:"REDIS_RESET_TOKEN_DB"`
	RedisTaskQueueDB    int    `mapstructure:"REDIS_TASK_QUEUE_DB"`
	CatalogCacheSeconds int    `mapstructure:"CATALOG_CACHE_SECONDS"`

	// Transactional email.
	SendGridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	EmailFromName  string `mapstructure:"EMAIL_FROM_NAME"`
	EmailFromAddr  string `mapstructure:"EMAIL_FROM_ADDR"`

	// Google OAuth client ID used as the ID-token audience.
	GoogleClientID string `mapstructure:"GOOGLE_CLIENT_ID"`

	// Base URL embedded in password-reset links.
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_SESSION_DB", 2)
	viper.SetDefault("REDIS_RESET_TOKEN_DB", 3)
	viper.SetDefault("REDIS_TASK_QUEUE_DB", 4)
	viper.SetDefault("CATALOG_CACHE_SECONDS", 300)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "surgeryhub")
	viper.SetDefault("EMAIL_FROM_NAME", "Surgery Hub")
	viper.SetDefault("EMAIL_FROM_ADDR", "bookings@surgeryhub.in")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")

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
