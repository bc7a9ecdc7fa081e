package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config is loaded once at process start.
type Config struct {
	Port        string
	CORSOrigins []string
	DatabaseURL string
	JWTSecret   []byte
	SMTPAddr    string
}

// envFileCandidates are tried in order; the first existing file wins.
var envFileCandidates = []string{".env", "../.env", "../../.env"}

func loadEnvFile(log *zap.Logger) {
	for _, p := range envFileCandidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			log.Warn("env file load failed", zap.String("path", p), zap.Error(err))
			return
		}
		log.Info("env file loaded", zap.String("path", p))
		return
	}
	log.Warn("no env file found", zap.Strings("tried", envFileCandidates))
}

func loadConfig(log *zap.Logger) *Config {
	loadEnvFile(log)

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: firstEnv("DATABASE_URL", "DB_DSN"),
		SMTPAddr:    os.Getenv("SMTP_ADDR"),
	}

	origins := getEnv("CORS_ORIGIN", "http://localhost:4200,http://127.0.0.1:4200")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	cfg.JWTSecret = []byte(secret)

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
