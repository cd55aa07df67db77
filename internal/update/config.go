package update

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fitfocus/fitfocus/internal/coach"
	"github.com/fitfocus/fitfocus/internal/model"
)

type RuntimeConfig struct {
	DBPath      string
	GeminiKey   string
	GeminiModel string

	// Language, when set, overrides the persisted UI language at startup.
	Language model.Language
}

func DefaultRuntimeConfig() RuntimeConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return RuntimeConfig{
		DBPath:      filepath.Join(home, ".fitfocus", "fitfocus.db"),
		GeminiModel: coach.DefaultModel,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("FITFOCUS_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("FITFOCUS_GEMINI_API_KEY")); v != "" {
		cfg.GeminiKey = v
	}
	if v := strings.TrimSpace(os.Getenv("FITFOCUS_GEMINI_MODEL")); v != "" {
		cfg.GeminiModel = v
	}
	if v := model.Language(strings.TrimSpace(os.Getenv("FITFOCUS_LANGUAGE"))); v.IsValid() {
		cfg.Language = v
	}
	return cfg
}
