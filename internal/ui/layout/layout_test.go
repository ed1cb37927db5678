package layout

import (
	"strings"
	"testing"

	"github.com/abhisek/learnsense/internal/settings"
	"github.com/abhisek/learnsense/internal/ui/theme"
)

func TestRenderHeader_ShowsAppAndTheme(t *testing.T) {
	h := RenderHeader(theme.New(settings.ThemeLight), "Study", 80)
	for _, want := range []string{AppName, "Study", "Light"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}

	h = RenderHeader(theme.New(settings.ThemeDark), "Study", 80)
	if !strings.Contains(h, "Dark") {
		t.Error("header should show dark indicator")
	}
}

func TestRenderFooter_ShowsHints(t *testing.T) {
	f := RenderFooter(theme.New(settings.ThemeDark), []KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "Back") {
		t.Errorf("footer missing hint: %q", f)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected too small by width")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should be accepted")
	}
}
