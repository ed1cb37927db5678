package settings

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Theme is the color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the settings key holding the preference.
const ThemeKey = "theme"

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string { return string(t) }

// Store is the key-value persistence the service writes through to.
type Store interface {
	GetSetting(ctx context.Context, name string) (string, bool, error)
	SetSetting(ctx context.Context, name, value string) error
}

// ThemeService holds the current theme and persists every change.
type ThemeService struct {
	store   Store
	current Theme
}

// NewThemeService loads the stored preference, falling back to platform
// when nothing usable is stored. A nil platform means dark.
func NewThemeService(ctx context.Context, store Store, platform func() Theme) (*ThemeService, error) {
	if platform == nil {
		platform = func() Theme { return ThemeDark }
	}

	raw, ok, err := store.GetSetting(ctx, ThemeKey)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	current := platform()
	if ok {
		if t, err := ParseTheme(raw); err == nil {
			current = t
		}
	}
	if _, err := ParseTheme(string(current)); err != nil {
		current = ThemeDark
	}

	return &ThemeService{store: store, current: current}, nil
}

// Current returns the active theme.
func (s *ThemeService) Current() Theme {
	return s.current
}

// Set persists t, then makes it current. On a write error the current
// theme is unchanged.
func (s *ThemeService) Set(ctx context.Context, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := s.store.SetSetting(ctx, ThemeKey, string(t)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	s.current = t
	return nil
}

// Toggle flips between light and dark and returns the new theme.
func (s *ThemeService) Toggle(ctx context.Context) (Theme, error) {
	next := s.current.Opposite()
	if err := s.Set(ctx, next); err != nil {
		return s.current, err
	}
	return next, nil
}

// PlatformTheme guesses the terminal background from COLORFGBG
// ("fg;bg" or "fg;default;bg"). Undetectable means dark.
func PlatformTheme() Theme {
	return themeFromColorFGBG(os.Getenv("COLORFGBG"))
}

// PlatformThemeOr returns fallback when the terminal gives no hint.
func PlatformThemeOr(fallback Theme) func() Theme {
	return func() Theme {
		if os.Getenv("COLORFGBG") == "" {
			if _, err := ParseTheme(string(fallback)); err == nil {
				return fallback
			}
		}
		return PlatformTheme()
	}
}

func themeFromColorFGBG(v string) Theme {
	parts := strings.Split(v, ";")
	if len(parts) < 2 {
		return ThemeDark
	}
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return ThemeDark
	}
	switch bg {
	case 7, 15:
		return ThemeLight
	}
	return ThemeDark
}
