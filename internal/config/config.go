// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// DataDir holds the local plan cache and progress history.
	DataDir string
	// UserID scopes rows in the shared progress database.
	UserID string

	AIBaseURL string
	AIAPIKey  string
	AIModel   string
	// FallbackPlan enables the built-in plan generator when the AI
	// endpoint is unreachable. Off by default so failures stay visible.
	FallbackPlan bool

	DesktopNotifications bool
	RemoteDBPath         string
	SchedulerBuffer      int
}

func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".fixyourlife")
	return Config{
		DataDir:         dataDir,
		UserID:          "local",
		RemoteDBPath:    filepath.Join(dataDir, "sync.db"),
		SchedulerBuffer: 16,
	}
}

// Load reads a .env file if one exists, then applies FYL_* variables
// over the defaults. Existing environment variables win over the file.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(Default())
}

func FromEnv(base Config) Config {
	cfg := base
	if v := getEnv("FYL_DATA_DIR"); v != "" {
		cfg.DataDir = v
		cfg.RemoteDBPath = filepath.Join(v, "sync.db")
	}
	if v := getEnv("FYL_USER_ID"); v != "" {
		cfg.UserID = v
	}
	if v := getEnv("FYL_AI_BASE_URL"); v != "" {
		cfg.AIBaseURL = v
	}
	if v := getEnv("FYL_AI_API_KEY"); v != "" {
		cfg.AIAPIKey = v
	}
	if v := getEnv("FYL_AI_MODEL"); v != "" {
		cfg.AIModel = v
	}
	if v, ok := getEnvBool("FYL_FALLBACK_PLAN"); ok {
		cfg.FallbackPlan = v
	}
	if v, ok := getEnvBool("FYL_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v := getEnv("FYL_REMOTE_DB"); v != "" {
		cfg.RemoteDBPath = v
	}
	if v, ok := getEnvInt("FYL_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	return cfg
}

func getEnv(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func getEnvInt(name string) (int, bool) {
	raw := getEnv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.ToLower(getEnv(name))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
