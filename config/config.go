package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Seed      SeedConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port            string
	GinMode         string
	Environment     string
	ShutdownTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string // debug, info, warn, error; empty picks by environment
	Format string // console, json
}

type SeedConfig struct {
	SampleData bool
}

type SchedulerConfig struct {
	StatsCron string // empty disables the stats job
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "5000"),
			GinMode:         getEnv("GIN_MODE", "debug"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level:  os.Getenv("LOG_LEVEL"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Seed: SeedConfig{
			SampleData: parseBool(getEnv("SEED_SAMPLE_DATA", "true"), true),
		},
		Scheduler: SchedulerConfig{
			StatsCron: lookupEnv("STATS_CRON", "@every 10m"),
		},
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
		if config.IsDevelopment() {
			config.Log.Level = "debug"
		}
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnv treats an explicitly empty variable as a value, unlike getEnv.
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Printf("Invalid boolean %s, using default %t", s, fallback)
		return fallback
	}
	return b
}

func parseSlice(s string) []string {
	result := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
