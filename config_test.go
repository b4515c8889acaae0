package glide

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("frameRate: 30\ndebug: true\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FrameRate != 30 || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("debug: false\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FrameRate != DefaultFrameRate {
		t.Errorf("FrameRate = %d, want %d", cfg.FrameRate, DefaultFrameRate)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero frame rate", "frameRate: 0"},
		{"negative frame rate", "frameRate: -5"},
		{"not yaml", "frameRate: [unclosed"},
		{"wrong type", "frameRate: fast"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glide.yaml")
	if err := os.WriteFile(path, []byte("frameRate: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if NewAnimator(cfg).FrameRate() != 120 {
		t.Errorf("FrameRate = %d, want 120", cfg.FrameRate)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
