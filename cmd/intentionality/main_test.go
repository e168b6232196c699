package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "intentionality")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func TestRunExitsTwoOnBrokenConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unparseable toml", content: "[ui\ntheme ="},
		{name: "unknown theme", content: "[ui]\ntheme = \"solarized\"\n"},
		{name: "inverted schedule hours", content: "[schedule]\nmin_hour = 20\nmax_hour = 6\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			writeConfigFile(t, home, tt.content)

			var stderr strings.Builder
			if code := run(&stderr); code != 2 {
				t.Errorf("run() = %d, want 2", code)
			}
			if !strings.Contains(stderr.String(), "bad configuration") {
				t.Errorf("stderr = %q, want a bad configuration message", stderr.String())
			}
		})
	}
}
