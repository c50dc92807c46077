// Package config reads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPort          = "8080"
	defaultMongoDatabase = "rentx"
	defaultMQTTTopic     = "rentx/reservations"
	defaultJWTSecret     = "default-secret-key-change-in-production"
	defaultJWTExpiry     = 24 * time.Hour
	defaultCORSOrigins   = "http://localhost:5173,http://127.0.0.1:5173"
)

// Config holds every runtime setting.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	MQTTBroker    string
	MQTTTopic     string
	JWTSecret     string
	JWTExpiry     time.Duration
	CORSOrigins   []string
	LogLevel      log.Level
	LogJSON       bool
	AdminEmail    string
	AdminPassword string
	TrustProxy    bool
}

// Load reads .env files (missing files are fine) and then the environment.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			log.WithError(err).WithField("file", f).Warn("Failed to load env file")
		}
	}

	cfg := Config{
		Port:          getenv("PORT", defaultPort),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getenv("MONGO_DATABASE", defaultMongoDatabase),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		MQTTBroker:    os.Getenv("MQTT_BROKER"),
		MQTTTopic:     getenv("MQTT_TOPIC", defaultMQTTTopic),
		JWTSecret:     getenv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:     defaultJWTExpiry,
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", defaultCORSOrigins)),
		LogLevel:      log.InfoLevel,
		LogJSON:       os.Getenv("LOG_FORMAT") != "text",
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		TrustProxy:    os.Getenv("TRUST_PROXY") == "true",
	}

	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.JWTExpiry = d
		} else {
			log.WithField("value", v).Warn("Invalid JWT_EXPIRY, using default")
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if lvl, err := log.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		} else {
			log.WithField("value", v).Warn("Invalid LOG_LEVEL, using info")
		}
	}
	return cfg
}

// ConfigureLogging applies the level and formatter to the standard logger.
func (c Config) ConfigureLogging() {
	log.SetLevel(c.LogLevel)
	if c.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
