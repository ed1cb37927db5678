package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learnsense/internal/analysis"
	"github.com/abhisek/learnsense/internal/app"
	"github.com/abhisek/learnsense/internal/config"
	"github.com/abhisek/learnsense/internal/llm"
	"github.com/abhisek/learnsense/internal/logger"
	"github.com/abhisek/learnsense/internal/settings"
	"github.com/abhisek/learnsense/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	log := openLogger(cfg)
	defer log.Sync() //nolint:errcheck

	themes, err := settings.NewThemeService(ctx, st.SettingsRepo(), settings.PlatformThemeOr(cfg.ThemeDefault))
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	opts := app.Options{
		Theme:        themes,
		DefaultStyle: cfg.DefaultStyle,
		Timeout:      cfg.LLM.Timeout,
		Log:          log,
	}

	analyzer, err := newAnalyzer(ctx, cfg, st, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Analysis will fail until a provider is set up.")
		log.Warnw("llm provider unavailable", "error", err)
		opts.Analyzer = unavailableAnalyzer{err: err}
	} else {
		log.Infow("starting", "provider", cfg.LLM.Provider, "model", analyzer.ModelID(), "discovered", cfg.ProviderDiscovered)
		opts.Analyzer = analyzer
	}

	return app.Run(opts)
}

// openLogger falls back to a no-op logger when the log file cannot be
// opened. The TUI owns the terminal, so logs never go to stderr.
func openLogger(cfg config.Config) *zap.SugaredLogger {
	log, err := logger.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return logger.Nop()
	}
	return log
}

// newAnalyzer builds the provider chain and the analysis client on top.
func newAnalyzer(ctx context.Context, cfg config.Config, st *store.Store, log *zap.SugaredLogger) (*analysis.Analyzer, error) {
	var mock *llm.MockProvider
	if cfg.LLM.Provider == llm.ProviderMock {
		mock = demoProvider()
	}
	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), log, mock)
	if err != nil {
		return nil, err
	}
	return analysis.NewAnalyzer(provider, cfg.Analysis, log), nil
}

// unavailableAnalyzer stands in when no provider could be built, so every
// submit surfaces the usual failure message.
type unavailableAnalyzer struct {
	err error
}

func (u unavailableAnalyzer) Analyze(context.Context, analysis.Request) (*analysis.Response, error) {
	return nil, fmt.Errorf("%w: %w", analysis.ErrAnalysisFailed, u.err)
}
