package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	LogMode     string // "production" veya "development"
	// Snowflake düğüm numarası (çoklu instance'da farklı olmalı)
	SnowflakeNode int64
	// Düşük stok taraması için cron ifadesi
	LowStockCron string
	// Tablolar boşsa açılışta örnek veriyle tohumla
	SeedDemoData bool
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=cafemaster port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LogMode:       getEnv("LOG_MODE", "development"),
		SnowflakeNode: getEnvInt64("SNOWFLAKE_NODE", 0),
		LowStockCron:  getEnv("LOW_STOCK_CRON", "@every 5m"),
		SeedDemoData:  getEnv("SEED_DEMO_DATA", "true") == "true",
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=cafemaster port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("[WARN] %s sayı olarak çözümlenemedi, varsayılan (%d) kullanılıyor", key, def)
	}
	return def
}
