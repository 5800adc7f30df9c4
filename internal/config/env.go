package config

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
    Level        string
    Pretty       bool
    File         string
    MaxSizeMB    int
    MaxBackups   int
    MaxAgeDays   int
    Compress     bool
}

// AxiomConfig holds Axiom logging configuration.
type AxiomConfig struct {
    Send          bool
    APIKey        string
    OrgID         string
    Dataset       string
    FlushInterval time.Duration
}

// ServerConfig defines HTTP server behavior and limits.
type ServerConfig struct {
    Port            string
    RequestTimeout  time.Duration
    ShutdownTimeout time.Duration
    ThrottleLimit   int
}

// GeminiConfig defines connectivity to the external generation service.
type GeminiConfig struct {
    APIKey string
    Model  string
}

// UploadConfig defines transient upload storage.
type UploadConfig struct {
    Dir      string
    MaxMB    int
    SweepAge time.Duration
}

// CacheConfig defines the optional Redis response cache.
type CacheConfig struct {
    Enable   bool
    RedisURL string
    TTL      time.Duration
}

// Config is the top-level configuration.
type Config struct {
    Server  ServerConfig
    Gemini  GeminiConfig
    Upload  UploadConfig
    Cache   CacheConfig
    Logging LoggingConfig
    Axiom   AxiomConfig
}

// FromEnv loads configuration from environment with sensible defaults.
func FromEnv() Config {
    cfg := Config{}

    cfg.Server = ServerConfig{
        Port:            getEnv("PORT", "8080"),
        RequestTimeout:  parseDuration(getEnv("SERVER_TIMEOUT", "2m"), 2*time.Minute),
        ShutdownTimeout: parseDuration(getEnv("SERVER_SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
        ThrottleLimit:   parseInt(getEnv("SERVER_THROTTLE_LIMIT", "50"), 50),
    }

    apiKey := getEnv("GEMINI_API_KEY", "")
    if apiKey == "" { apiKey = getEnv("GOOGLE_API_KEY", "") }
    cfg.Gemini = GeminiConfig{
        APIKey: apiKey,
        Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
    }

    cfg.Upload = UploadConfig{
        Dir:      getEnv("UPLOAD_DIR", "uploads"),
        MaxMB:    parseInt(getEnv("UPLOAD_MAX_MB", "32"), 32),
        SweepAge: parseDuration(getEnv("UPLOAD_SWEEP_AGE", "1h"), time.Hour),
    }

    cfg.Cache = CacheConfig{
        Enable:   parseBool(getEnv("CACHE_ENABLE", "0")),
        RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
        TTL:      parseDuration(getEnv("CACHE_TTL", "10m"), 10*time.Minute),
    }

    cfg.Logging = LoggingConfig{
        Level:      getEnv("LOG_LEVEL", "info"),
        Pretty:     parseBool(getEnv("LOG_PRETTY", devDefaultPretty())),
        File:       getEnv("LOG_FILE", "logs/genrelay.log"),
        MaxSizeMB:  parseInt(getEnv("LOG_MAX_SIZE_MB", "100"), 100),
        MaxBackups: parseInt(getEnv("LOG_MAX_BACKUPS", "10"), 10),
        MaxAgeDays: parseInt(getEnv("LOG_MAX_AGE_DAYS", "30"), 30),
        Compress:   parseBool(getEnv("LOG_COMPRESS", "true")),
    }

    baseDataset := getEnv("AXIOM_DATASET", "dev")
    cfg.Axiom = AxiomConfig{
        Send:          parseBool(getEnv("SEND_LOGS_TO_AXIOM", "0")),
        APIKey:        getEnv("AXIOM_API_KEY", ""),
        OrgID:         getEnv("AXIOM_ORG_ID", ""),
        Dataset:       baseDataset + "_genrelay",
        FlushInterval: parseDuration(getEnv("AXIOM_FLUSH_INTERVAL", "10s"), 10*time.Second),
    }

    return cfg
}

// Helpers
func getEnv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseInt(s string, def int) int {
    if s == "" { return def }
    if n, err := strconv.Atoi(s); err == nil { return n }
    return def
}

func parseBool(s string) bool {
    v := strings.ToLower(strings.TrimSpace(s))
    return v == "1" || v == "true" || v == "yes" || v == "on"
}

func parseDuration(s string, def time.Duration) time.Duration {
    if s == "" { return def }
    if d, err := time.ParseDuration(s); err == nil { return d }
    return def
}

func devDefaultPretty() string {
    env := strings.ToLower(os.Getenv("ENVIRONMENT"))
    if env == "dev" || env == "development" || env == "local" { return "true" }
    return "false"
}
