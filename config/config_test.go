package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s failed: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		}
	})
}

func TestLoadRequiresMySQLDSN(t *testing.T) {
	unsetEnv(t, "MYSQL_DSN")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing MYSQL_DSN")
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "root:root@tcp(localhost:3306)/backend?parseTime=true")
	setEnv(t, "APP_SERVICE_NAME", "backend-test")
	setEnv(t, "HTTP_PORT", "8181")
	setEnv(t, "HTTP_USE_CORS", "true")
	setEnv(t, "MYSQL_MAX_OPEN_CONNS", "20")
	setEnv(t, "MYSQL_MAX_IDLE_CONNS", "8")
	setEnv(t, "MYSQL_CONN_MAX_LIFETIME_MINUTES", "40")
	setEnv(t, "YOOKASSA_SHOP_ID", "shop-1")
	setEnv(t, "YOOKASSA_SECRET_KEY", "secret-1")
	setEnv(t, "YOOKASSA_HTTP_TIMEOUT_SECONDS", "7")
	setEnv(t, "TELEGRAM_BOT_TOKEN", "token-1")
	setEnv(t, "TELEGRAM_CHAT_ID", "-100200")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.App.ServiceName != "backend-test" {
		t.Fatalf("unexpected app service name: %s", cfg.App.ServiceName)
	}
	if cfg.HTTP.Port != "8181" {
		t.Fatalf("unexpected http port: %s", cfg.HTTP.Port)
	}
	if !cfg.HTTP.UseCORS {
		t.Fatal("expected CORS to be enabled")
	}
	if cfg.MySQL.MaxOpenConns != 20 || cfg.MySQL.MaxIdleConns != 8 {
		t.Fatalf("unexpected mysql pool config: %+v", cfg.MySQL)
	}
	if cfg.MySQL.ConnMaxLifetime != 40*time.Minute {
		t.Fatalf("unexpected mysql lifetime: %v", cfg.MySQL.ConnMaxLifetime)
	}
	if cfg.YooKassa.ShopID != "shop-1" || cfg.YooKassa.SecretKey != "secret-1" {
		t.Fatalf("unexpected yookassa config: %+v", cfg.YooKassa)
	}
	if cfg.YooKassa.HTTPTimeout != 7*time.Second {
		t.Fatalf("unexpected yookassa timeout: %v", cfg.YooKassa.HTTPTimeout)
	}
	if cfg.YooKassa.BaseURL != "https://api.yookassa.ru" {
		t.Fatalf("unexpected yookassa base url: %s", cfg.YooKassa.BaseURL)
	}
	if cfg.Telegram.BotToken != "token-1" || cfg.Telegram.ChatID != "-100200" {
		t.Fatalf("unexpected telegram config: %+v", cfg.Telegram)
	}
}
