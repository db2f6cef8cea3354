package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the runtime settings for both binaries. Every field has a
// default so the service runs with an empty environment.
type Config struct {
	Port           string
	AllowedOrigins []string

	// Knobs for the per-IP limiter on question submission.
	SubmitPerMinute int
	SubmitBurst     int
	SubmitTTL       time.Duration

	// Base URL the authoring form talks to.
	ServerURL string
}

// Load reads a .env file when present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getenv("PORT", "8080"),
		AllowedOrigins:  splitCSV(getenv("ALLOWED_ORIGINS", "http://localhost:5173")),
		SubmitPerMinute: getint("SUBMIT_REQUESTS_PER_MINUTE", 30),
		SubmitBurst:     getint("SUBMIT_BURST", 10),
		SubmitTTL:       time.Duration(getint("SUBMIT_LIMITER_TTL_MINUTES", 5)) * time.Minute,
		ServerURL:       getenv("SERVER_URL", "http://localhost:8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
