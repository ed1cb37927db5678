package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/learnsense/internal/config"
	"github.com/abhisek/learnsense/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnsense",
	Short: "Find the invisible confusion in what you think you understand",
	Long: "LearnSense reads your own explanation of a topic and points out misconceptions, " +
		"missing prerequisites and the hidden gap behind them, then gives you practice problems aimed at it.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNSENSE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides LEARNSENSE_CONFIG env var)")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: anthropic, openai, gemini, openrouter or mock")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config (or the default
// location) and applies the --provider flag on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.LLM.Provider = p
		cfg.ProviderDiscovered = false
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEARNSENSE_DB env var, then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" && os.Getenv("LEARNSENSE_DB") == "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the database it points at.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open database: %w", err)
	}
	return s, cfg, nil
}
