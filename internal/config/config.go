package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/learnsense/internal/analysis"
	"github.com/abhisek/learnsense/internal/llm"
	"github.com/abhisek/learnsense/internal/settings"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	LLM      llm.Config
	Analysis analysis.Config

	// DefaultStyle is preselected in the study view.
	DefaultStyle analysis.LearningStyle

	// ThemeDefault is used when the terminal gives no hint and nothing is
	// stored. Empty means detect.
	ThemeDefault settings.Theme

	LogPath  string
	LogLevel string

	// DBPath overrides the store location when set.
	DBPath string

	// ProviderDiscovered is true when the provider came from a standard
	// *_API_KEY variable rather than explicit configuration.
	ProviderDiscovered bool
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	return Config{
		LLM:          llm.DefaultConfig(),
		Analysis:     analysis.DefaultConfig(),
		DefaultStyle: analysis.DefaultLearningStyle,
		LogPath:      DefaultLogPath(),
		LogLevel:     "info",
	}
}

// Load reads the file at path and layers the environment on top.
func Load(path string) (Config, error) {
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Resolve(fc)
}

// Resolve applies fc, then LEARNSENSE_* variables, then falls back to
// standard API key variables when no provider was chosen explicitly.
func Resolve(fc FileConfig) (Config, error) {
	cfg := Default()

	explicitProvider := applyLLM(&cfg.LLM, fc.LLM)

	if fc.Analysis.MaxTokens != nil {
		cfg.Analysis.MaxTokens = *fc.Analysis.MaxTokens
	}
	if fc.Analysis.Temperature != nil {
		cfg.Analysis.Temperature = *fc.Analysis.Temperature
	}
	if fc.Analysis.DefaultStyle != nil {
		s, err := analysis.ParseLearningStyle(*fc.Analysis.DefaultStyle)
		if err != nil {
			return Config{}, fmt.Errorf("analysis.default_style: %w", err)
		}
		cfg.DefaultStyle = s
	}
	if fc.UI.ThemeDefault != nil && *fc.UI.ThemeDefault != "" {
		t, err := settings.ParseTheme(*fc.UI.ThemeDefault)
		if err != nil {
			return Config{}, fmt.Errorf("ui.theme_default: %w", err)
		}
		cfg.ThemeDefault = t
	}
	if fc.Log.Path != nil {
		cfg.LogPath = *fc.Log.Path
	}
	if fc.Log.Level != nil {
		cfg.LogLevel = *fc.Log.Level
	}
	if fc.Store.Path != nil {
		cfg.DBPath = *fc.Store.Path
	}

	if os.Getenv("LEARNSENSE_LLM_PROVIDER") != "" {
		explicitProvider = true
	}
	cfg.LLM = llm.ApplyEnv(cfg.LLM)

	if v := os.Getenv("LEARNSENSE_STYLE"); v != "" {
		s, err := analysis.ParseLearningStyle(v)
		if err != nil {
			return Config{}, fmt.Errorf("LEARNSENSE_STYLE: %w", err)
		}
		cfg.DefaultStyle = s
	}
	if v := os.Getenv("LEARNSENSE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LEARNSENSE_LOG_FILE"); v != "" {
		cfg.LogPath = v
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if !explicitProvider && !cfg.LLM.HasKey() {
		if discovered, ok := llm.DiscoverConfig(cfg.LLM); ok {
			cfg.LLM = discovered
			cfg.ProviderDiscovered = true
		}
	}

	return cfg, nil
}

// applyLLM copies set fields and reports whether the provider was named.
func applyLLM(cfg *llm.Config, s LLMSection) bool {
	explicit := false
	if s.Provider != nil && *s.Provider != "" {
		cfg.Provider = strings.ToLower(*s.Provider)
		explicit = true
	}
	if s.Timeout != nil {
		cfg.Timeout = s.Timeout.Duration
	}
	if s.MaxAttempts != nil {
		cfg.Retry.MaxAttempts = *s.MaxAttempts
	}

	set := func(dst *string, src *string) {
		if src != nil && *src != "" {
			*dst = *src
		}
	}
	set(&cfg.Anthropic.APIKey, s.Anthropic.APIKey)
	set(&cfg.Anthropic.Model, s.Anthropic.Model)
	set(&cfg.OpenAI.APIKey, s.OpenAI.APIKey)
	set(&cfg.OpenAI.Model, s.OpenAI.Model)
	set(&cfg.OpenAI.BaseURL, s.OpenAI.BaseURL)
	set(&cfg.Gemini.APIKey, s.Gemini.APIKey)
	set(&cfg.Gemini.Model, s.Gemini.Model)
	set(&cfg.OpenRouter.APIKey, s.OpenRouter.APIKey)
	set(&cfg.OpenRouter.Model, s.OpenRouter.Model)
	set(&cfg.OpenRouter.BaseURL, s.OpenRouter.BaseURL)
	return explicit
}
