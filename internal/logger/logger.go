// Package logger builds the developer log. The terminal belongs to the UI,
// so output goes to a file as JSON lines.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger appending to path at the given level.
// Sensitive fields are redacted before they reach the encoder.
func New(path, level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	zl, err := cfg.Build(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return &redactCore{Core: c}
	}))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return zl.Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// redactCore masks credential-like fields.
type redactCore struct {
	zapcore.Core
}

func (c *redactCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactCore{Core: c.Core.With(sanitizeFields(fields))}
}

func (c *redactCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *redactCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(ent, sanitizeFields(fields))
}

func sanitizeFields(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		key := strings.ToLower(strings.TrimSpace(f.Key))
		if isRedactKey(key) || (f.Type == zapcore.StringType && looksLikeAPIKey(f.String)) {
			out[i] = zap.String(f.Key, "[REDACTED]")
			continue
		}
		out[i] = f
	}
	return out
}

func isRedactKey(key string) bool {
	switch {
	case strings.Contains(key, "token") && !strings.Contains(key, "tokens"),
		strings.Contains(key, "authorization"),
		strings.Contains(key, "password"),
		strings.Contains(key, "secret"),
		strings.Contains(key, "api_key"),
		strings.Contains(key, "apikey"):
		return true
	default:
		return false
	}
}

// looksLikeAPIKey matches the common provider key prefixes.
func looksLikeAPIKey(s string) bool {
	if len(s) < 20 || strings.ContainsAny(s, " \n") {
		return false
	}
	for _, p := range []string{"sk-", "sk-ant-", "sk-or-", "AIza"} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
