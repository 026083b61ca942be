package ui

import (
	"strings"
	"testing"
)

// Theme state is global, so these tests do not run in parallel.

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct{ name, want string }{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme_NoColor(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	InitTheme(true)
	if ColorGreen() != "" || ColorReset() != "" {
		t.Error("no-color theme must not emit escape codes")
	}

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Error("NO_COLOR must disable colors")
	}
}

func TestResultBox(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	SetCurrentTheme(NoColorTheme)
	out := ResultBox().Render(Label().Render("Result") + "42")
	if !strings.Contains(out, "Result") || !strings.Contains(out, "42") {
		t.Errorf("rendered box lost its content:\n%s", out)
	}
	if strings.Contains(out, "\033[38") {
		t.Errorf("no-color box must not contain colors:\n%s", out)
	}
}
