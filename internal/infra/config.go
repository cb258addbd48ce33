package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv            string
	Port              string
	GeminiAPIKey      string
	GeminiBaseURL     string
	GeminiImageModel  string
	GeminiVisionModel string
	StyleDefault      string
	AspectRatio       string
	OutputMIME        string
	DefaultLocale     string
	GeoIPDBPath       string
	AllowedOrigins    []string
	HTTPReadTimeout   time.Duration
	HTTPWriteTimeout  time.Duration
	HTTPIdleTimeout   time.Duration
	GeminiTimeout     time.Duration
	RateLimitPerMin   int
	MaxImageBytes     int64
	MaxActiveRenders  int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiImageModel:  getEnv("GEMINI_IMAGE_MODEL", "imagen-3.0-generate-002"),
		GeminiVisionModel: getEnv("GEMINI_VISION_MODEL", "gemini-2.5-flash"),
		StyleDefault:      getEnv("STYLE_DEFAULT", "inkwash"),
		AspectRatio:       getEnv("ASPECT_RATIO", "1:1"),
		OutputMIME:        getEnv("OUTPUT_MIME", "image/png"),
		DefaultLocale:     getEnv("DEFAULT_LOCALE", "en"),
		GeoIPDBPath:       os.Getenv("GEOIP_DB_PATH"),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS", "*"),
		HTTPReadTimeout:   time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:  time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:   time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		GeminiTimeout:     time.Second * time.Duration(getEnvInt("GEMINI_TIMEOUT_SECONDS", 90)),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MINUTE", 12),
		MaxImageBytes:     getEnvInt64("MAX_IMAGE_BYTES", 8<<20),
		MaxActiveRenders:  getEnvInt("MAX_ACTIVE_RENDERS", 2),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	if cfg.MaxActiveRenders < 1 {
		cfg.MaxActiveRenders = 1
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
