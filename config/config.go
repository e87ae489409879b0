package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	MySQL    MySQLConfig
	Log      LogConfig
	YooKassa YooKassaConfig
	Telegram TelegramConfig
}

type AppConfig struct {
	ServiceName string
}

type HTTPConfig struct {
	Host    string
	Port    string
	UseCORS bool
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type YooKassaConfig struct {
	ShopID      string
	SecretKey   string
	BaseURL     string
	HTTPTimeout time.Duration
}

type TelegramConfig struct {
	BotToken    string
	ChatID      string
	BaseURL     string
	HTTPTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		return nil, errors.New("MYSQL_DSN environment variable is required")
	}

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "guide-backend"),
		},
		HTTP: HTTPConfig{
			Host:    getEnv("HTTP_HOST", "0.0.0.0"),
			Port:    getEnv("HTTP_PORT", "8080"),
			UseCORS: getBoolEnv("HTTP_USE_CORS", false),
		},
		MySQL: MySQLConfig{
			DSN:             mysqlDSN,
			MaxOpenConns:    getIntEnv("MYSQL_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("MYSQL_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getMinutesEnv("MYSQL_CONN_MAX_LIFETIME_MINUTES", 30*time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		YooKassa: YooKassaConfig{
			ShopID:      getEnv("YOOKASSA_SHOP_ID", ""),
			SecretKey:   getEnv("YOOKASSA_SECRET_KEY", ""),
			BaseURL:     getEnv("YOOKASSA_BASE_URL", "https://api.yookassa.ru"),
			HTTPTimeout: getSecondsEnv("YOOKASSA_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
		Telegram: TelegramConfig{
			BotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:      getEnv("TELEGRAM_CHAT_ID", ""),
			BaseURL:     getEnv("TELEGRAM_BASE_URL", "https://api.telegram.org"),
			HTTPTimeout: getSecondsEnv("TELEGRAM_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getMinutesEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
