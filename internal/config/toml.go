// Package config loads the TOML file and environment into runtime settings.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "unset" from a zero value.
type FileConfig struct {
	LLM      LLMSection      `toml:"llm"`
	Analysis AnalysisSection `toml:"analysis"`
	UI       UISection       `toml:"ui"`
	Log      LogSection      `toml:"log"`
	Store    StoreSection    `toml:"store"`
}

// LLMSection maps provider selection and credentials.
type LLMSection struct {
	Provider    *string         `toml:"provider"`
	Timeout     *tomlDuration   `toml:"timeout"`
	MaxAttempts *int            `toml:"max_attempts"`
	Anthropic   ProviderSection `toml:"anthropic"`
	OpenAI      ProviderSection `toml:"openai"`
	Gemini      ProviderSection `toml:"gemini"`
	OpenRouter  ProviderSection `toml:"openrouter"`
}

// ProviderSection maps per-provider settings.
type ProviderSection struct {
	APIKey  *string `toml:"api_key"`
	Model   *string `toml:"model"`
	BaseURL *string `toml:"base_url"`
}

// AnalysisSection maps generation settings.
type AnalysisSection struct {
	MaxTokens    *int     `toml:"max_tokens"`
	Temperature  *float64 `toml:"temperature"`
	DefaultStyle *string  `toml:"default_style"`
}

// UISection maps presentation settings.
type UISection struct {
	ThemeDefault *string `toml:"theme_default"`
}

// LogSection maps developer logging.
type LogSection struct {
	Path  *string `toml:"path"`
	Level *string `toml:"level"`
}

// StoreSection maps persistence.
type StoreSection struct {
	Path *string `toml:"path"`
}

// tomlDuration decodes strings such as "45s".
type tomlDuration struct {
	time.Duration
}

func (d *tomlDuration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
